package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SharedOwnerID is the single logical owner in this deployment. There is no
// multi-tenant model; every record belongs to it.
const SharedOwnerID = "shared"

// PromptSource tags where a record lives: the remote store or the local
// fallback cache. Local records are not durably saved and are never merged
// back into the remote store.
type PromptSource string

const (
	PromptSourceRemote PromptSource = "remote"
	PromptSourceLocal  PromptSource = "local"
)

// PromptRecord is the persisted result of one generation event.
type PromptRecord struct {
	ID           string  `gorm:"primarykey;size:36" json:"id"`
	Title        string  `json:"title"`
	Role         string  `gorm:"type:text" json:"role"`
	Goal         string  `gorm:"type:text" json:"goal"`
	Format       string  `gorm:"type:text" json:"format"`
	Context      string  `gorm:"type:text" json:"context"`
	Constraints  string  `gorm:"type:text" json:"constraints"`
	Style        string  `gorm:"type:text" json:"style"`
	FullPrompt   string  `gorm:"type:text" json:"full_prompt"`
	RawInput     string  `gorm:"type:text" json:"raw_input"`
	TemplateUsed *string `json:"template_used"`
	UserID       string  `gorm:"index" json:"user_id"`
	Favorite     bool    `json:"favorite"`

	// Metadata of the generation call that produced this record
	// (model, latency, token usage).
	GenerationMeta datatypes.JSON `json:"generation_meta,omitempty"`

	Source    PromptSource `gorm:"-" json:"source,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

func (p *PromptRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Normalize fills defaults at the store boundary so callers never see a
// record with missing required fields. Only ID and CreatedAt may be pending.
func (p *PromptRecord) Normalize(owner string) {
	if p.Title == "" {
		p.Title = truncateTitle(p.RawInput)
	}
	if p.UserID == "" {
		p.UserID = owner
	}
	if p.Source == "" {
		p.Source = PromptSourceRemote
	}
}

// Display labels default to the raw input, bounded so a long description
// does not become the title wholesale.
const maxTitleRunes = 120

func truncateTitle(s string) string {
	runes := []rune(s)
	if len(runes) <= maxTitleRunes {
		return s
	}
	return string(runes[:maxTitleRunes])
}

// TemplateName returns the stored template reference, empty when none.
func (p *PromptRecord) TemplateName() string {
	if p.TemplateUsed == nil {
		return ""
	}
	return *p.TemplateUsed
}
