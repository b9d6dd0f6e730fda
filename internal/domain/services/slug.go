package services

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// MakeSlug generates a URL-safe slug from a service name.
// Example: "Business Operating Permit" -> "business-operating-permit"
func MakeSlug(name string) string {
	base := strings.ToLower(strings.TrimSpace(name))
	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" {
		base = "service"
	}
	return base
}

// EnsureSlug fills svc.Slug from the name when blank, suffixing -2, -3, ...
// until the slug is unique among other services.
func EnsureSlug(db *gorm.DB, svc *Service) error {
	if strings.TrimSpace(svc.Slug) != "" {
		return nil
	}

	base := MakeSlug(svc.Name)
	candidate := base
	for n := 2; ; n++ {
		var count int64
		if err := db.Model(&Service{}).
			Where("slug = ? AND id <> ?", candidate, svc.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			break
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}

	svc.Slug = candidate
	return nil
}
