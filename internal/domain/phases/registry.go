// Package phases holds the concrete audit rules. Each rule implements the
// phase.Phase contract; adding one means a new type here plus a single
// registration line in NewRegistry.
package phases

import (
	"net/http"
	"time"

	"github.com/skillaudit/skillaudit/internal/domain"
	"github.com/skillaudit/skillaudit/internal/domain/phase"
)

// NewRegistry wires every audit phase in its stable numbered order.
func NewRegistry(cfg domain.AuditConfig) *phase.Registry {
	linkClient := &http.Client{
		Timeout: time.Duration(cfg.LinkTimeoutSeconds) * time.Second,
	}

	return phase.NewRegistry(
		FrontMatter{},                         // 1
		RequiredFields{Config: cfg},           // 2
		UnknownFields{Config: cfg},            // 3
		InternalLinks{},                       // 4
		ExternalLinks{Client: linkClient},     // 5
		WordCount{Config: cfg},                // 6
		HeadingHierarchy{},                    // 7
		RequiredSections{Config: cfg},         // 8
		DescriptionLength{Config: cfg},        // 9
		NameFormat{},                          // 10
		TrailingWhitespace{},                  // 11
		TabIndentation{},                      // 12
		FinalNewline{},                        // 13
		LineEndings{},                         // 14
		DuplicateHeadings{},                   // 15
		CodeFences{},                          // 16
		TodoMarkers{},                         // 17
		ToolsField{Config: cfg},               // 18
		VersionField{},                        // 19
		LineLength{Config: cfg},               // 20
		ReferencedFiles{},                     // 21
	)
}
