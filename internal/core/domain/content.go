package domain

import "errors"

// ContentType is the discriminator value of the singleton website document.
const ContentType = "website"

var ErrContentNotFound = errors.New("content not found")
var ErrInvalidInput = errors.New("invalid input")

// ContentDocument holds the website copy as named sections ("hero",
// "services", …) mapped to opaque JSON. Sections are replaced wholesale,
// one at a time; the document itself is never deleted.
type ContentDocument map[string]any

// DefaultContent is the document served before an admin has saved anything.
func DefaultContent() ContentDocument {
	return ContentDocument{
		"type": ContentType,
		"hero": map[string]any{
			"title":          "Transform Your Business with",
			"titleHighlight": "Digital Excellence",
			"description": "We deliver cutting-edge digital solutions including web development, " +
				"mobile apps, graphic design, social media management, and SEO services " +
				"to help your business thrive.",
		},
		"services": []any{
			map[string]any{"title": "Web Development", "description": "Custom websites built with modern technologies"},
			map[string]any{"title": "Mobile Apps", "description": "Native and cross-platform mobile applications"},
			map[string]any{"title": "Graphic Design", "description": "Creative designs that capture your brand essence"},
			map[string]any{"title": "Social Media", "description": "Complete social media setup and management"},
			map[string]any{"title": "Google SEO", "description": "Optimize your online presence and rankings"},
		},
	}
}
