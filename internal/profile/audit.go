package profile

import (
	"fmt"
	"strings"

	"pixel-avatar/internal/avatar"
)

// Issue is one problem found in a saved avatar.
type Issue struct {
	Field  string
	Value  string
	Reason string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s=%s: %s", i.Field, i.Value, i.Reason)
}

const (
	ReasonUnknown = "unknown id, renders as fallback"
	ReasonLocked  = "locked at current points"
)

// Audit lists ids that would fall back when rendered and options the
// profile has not earned yet. Neither stops the avatar from rendering.
func Audit(p *Profile) []Issue {
	var issues []Issue
	for _, fb := range avatar.Resolve(p.Avatar).Fallbacks {
		field, value, _ := strings.Cut(fb, "=")
		issues = append(issues, Issue{Field: field, Value: value, Reason: ReasonUnknown})
	}

	gated := []struct {
		field   string
		id      string
		catalog *avatar.Catalog[avatar.Option]
	}{
		{"hairStyle", p.Avatar.HairStyle, avatar.HairStyles},
		{"shirtStyle", p.Avatar.ShirtStyle, avatar.ShirtStyles},
		{"pantsStyle", p.Avatar.PantsStyle, avatar.PantsStyles},
		{"accessory", p.Avatar.Accessory, avatar.Accessories},
		{"pose", p.Avatar.Pose, avatar.Poses},
	}
	for _, g := range gated {
		opt, ok := g.catalog.Lookup(g.id)
		if ok && avatar.IsLocked(opt, p.Points) {
			issues = append(issues, Issue{
				Field:  g.field,
				Value:  g.id,
				Reason: fmt.Sprintf("%s (needs %d)", ReasonLocked, opt.PointsRequired),
			})
		}
	}
	return issues
}
