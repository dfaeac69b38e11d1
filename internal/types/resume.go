package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Resume template constants
const (
	TemplateProfessional = "professional"
	TemplateCreative     = "creative"
	TemplateMinimalist   = "minimalist"
)

// PersonalInfo holds the contact block of a resume.
type PersonalInfo struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// ExperienceEntry is one position on a resume. Duration is free text
// (e.g. "3 years"); experience-level inference parses it, nothing else does.
type ExperienceEntry struct {
	Company     string     `json:"company,omitempty"`
	Position    string     `json:"position,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Current     bool       `json:"current,omitempty"`
	Description string     `json:"description,omitempty"`
	Duration    string     `json:"duration,omitempty"`
}

// EducationEntry is one school on a resume.
type EducationEntry struct {
	Institution string     `json:"institution,omitempty"`
	Degree      string     `json:"degree,omitempty"`
	Field       string     `json:"field,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	GPA         string     `json:"gpa,omitempty"`
}

// ProjectEntry is one project on a resume.
type ProjectEntry struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Link         string   `json:"link,omitempty"`
}

// CertificationEntry is one certification on a resume.
type CertificationEntry struct {
	Name         string     `json:"name,omitempty"`
	Issuer       string     `json:"issuer,omitempty"`
	Date         *time.Time `json:"date,omitempty"`
	CredentialID string     `json:"credentialId,omitempty"`
}

// LanguageEntry is one spoken language on a resume.
type LanguageEntry struct {
	Language    string `json:"language,omitempty"`
	Proficiency string `json:"proficiency,omitempty"` // beginner, intermediate, advanced, native
}

// Resume is the full resume document owned by one user. Nested collections
// are stored as a JSON document; no derived fields are persisted.
type Resume struct {
	ID             uuid.UUID            `json:"id"`
	UserID         uuid.UUID            `json:"-"`
	Title          string               `json:"title"`
	Template       string               `json:"template,omitempty"`
	PersonalInfo   PersonalInfo         `json:"personalInfo,omitempty"`
	Summary        string               `json:"summary,omitempty"`
	Location       string               `json:"location,omitempty"`
	Experience     []ExperienceEntry    `json:"experience,omitempty"`
	Education      []EducationEntry     `json:"education,omitempty"`
	Skills         []string             `json:"skills,omitempty"`
	Projects       []ProjectEntry       `json:"projects,omitempty"`
	Certifications []CertificationEntry `json:"certifications,omitempty"`
	Languages      []LanguageEntry      `json:"languages,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// CreateResumeRequest is the request body for creating or replacing a resume.
type CreateResumeRequest struct {
	Title          string               `json:"title" validate:"required,min=1"`
	Template       string               `json:"template,omitempty" validate:"omitempty,oneof=professional creative minimalist"`
	PersonalInfo   PersonalInfo         `json:"personalInfo,omitempty"`
	Summary        string               `json:"summary,omitempty"`
	Location       string               `json:"location,omitempty"`
	Experience     []ExperienceEntry    `json:"experience,omitempty"`
	Education      []EducationEntry     `json:"education,omitempty"`
	Skills         []string             `json:"skills,omitempty"`
	Projects       []ProjectEntry       `json:"projects,omitempty"`
	Certifications []CertificationEntry `json:"certifications,omitempty"`
	Languages      []LanguageEntry      `json:"languages,omitempty"`
}

// Validate validates the CreateResumeRequest using the validator.
func (r *CreateResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// GenerateResumeRequest is the request body for AI-assisted resume content.
type GenerateResumeRequest struct {
	Prompt     string `json:"prompt,omitempty"`
	TargetRole string `json:"targetRole,omitempty"`
	Template   string `json:"template,omitempty"`
}

// GeneratedResumeContent is the assistant's (or the fallback's) output.
type GeneratedResumeContent struct {
	Summary    string            `json:"summary"`
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
}
