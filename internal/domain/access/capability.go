package access

import "amma-cms/internal/domain/accounts"

type Capability string

const (
	ManageNews      Capability = "manage_news"
	ManageServices  Capability = "manage_services"
	ManageProjects  Capability = "manage_projects"
	ManageDocuments Capability = "manage_documents"
	ManageStaff     Capability = "manage_staff"
)

// All lists every content-management capability, in the order the portal
// dashboard reports them.
func All() []Capability {
	return []Capability{ManageNews, ManageServices, ManageProjects, ManageDocuments, ManageStaff}
}

// CanManage decides whether an actor may manage a content domain.
// Unauthenticated actors are denied everything, superusers are allowed
// everything, and anyone else needs an explicit grant. Absence of a grant
// always means deny.
func CanManage(u *accounts.User, c Capability) bool {
	if u == nil || !u.IsActive {
		return false
	}
	if u.IsSuperuser {
		return true
	}
	return u.HasGrant(string(c))
}

// CapabilitiesFor returns the actor's effective capability map, used by the
// dashboard and the /me endpoint.
func CapabilitiesFor(u *accounts.User) map[Capability]bool {
	out := make(map[Capability]bool, len(All()))
	for _, c := range All() {
		out[c] = CanManage(u, c)
	}
	return out
}
