package access

import (
	"testing"

	"amma-cms/internal/domain/accounts"

	"github.com/stretchr/testify/assert"
)

func TestCanManageDeniesWithoutGrant(t *testing.T) {
	user := &accounts.User{
		IsActive: true,
		Grants: []accounts.CapabilityGrant{
			{Capability: string(ManageNews)},
		},
	}

	assert.True(t, CanManage(user, ManageNews))

	// No grant row means deny, for every other capability.
	assert.False(t, CanManage(user, ManageServices))
	assert.False(t, CanManage(user, ManageProjects))
	assert.False(t, CanManage(user, ManageDocuments))
	assert.False(t, CanManage(user, ManageStaff))
}

func TestCanManageSuperuser(t *testing.T) {
	su := &accounts.User{IsActive: true, IsSuperuser: true}
	for _, c := range All() {
		assert.True(t, CanManage(su, c), string(c))
	}
}

func TestCanManageNilAndInactive(t *testing.T) {
	assert.False(t, CanManage(nil, ManageServices))

	// Deactivation overrides both grants and superuser status.
	inactive := &accounts.User{
		IsActive:    false,
		IsSuperuser: true,
		Grants: []accounts.CapabilityGrant{
			{Capability: string(ManageServices)},
		},
	}
	assert.False(t, CanManage(inactive, ManageServices))
}

func TestCapabilitiesFor(t *testing.T) {
	user := &accounts.User{
		IsActive: true,
		Grants: []accounts.CapabilityGrant{
			{Capability: string(ManageDocuments)},
		},
	}

	caps := CapabilitiesFor(user)
	assert.Len(t, caps, len(All()))
	assert.True(t, caps[ManageDocuments])
	assert.False(t, caps[ManageNews])
	assert.False(t, caps[ManageServices])
}
