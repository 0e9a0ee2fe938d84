package importer

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level structure of a schedule import file. Files
// may be YAML or JSON; JSON documents are valid YAML and decode the same way.
type ImportSchema struct {
	Project    ProjectImport     `yaml:"project" json:"project"`
	Resources  []ResourceImport  `yaml:"resources,omitempty" json:"resources,omitempty"`
	Phases     []PhaseImport     `yaml:"phases" json:"phases"`
	Milestones []MilestoneImport `yaml:"milestones,omitempty" json:"milestones,omitempty"`
}

// ProjectImport defines the project-level fields in the import file.
type ProjectImport struct {
	Code         string  `yaml:"code" json:"code"`
	Name         string  `yaml:"name" json:"name"`
	Status       string  `yaml:"status,omitempty" json:"status,omitempty"`
	TargetStart  *string `yaml:"target_start,omitempty" json:"target_start,omitempty"`
	TargetFinish *string `yaml:"target_finish,omitempty" json:"target_finish,omitempty"`
}

// ResourceImport declares a resource that phases refer to by Ref. A resource
// whose name already exists in the store is reused instead of duplicated.
type ResourceImport struct {
	Ref  string `yaml:"ref" json:"ref"`
	Name string `yaml:"name" json:"name"`
	Role string `yaml:"role,omitempty" json:"role,omitempty"`
}

type PhaseImport struct {
	Name                 string   `yaml:"name" json:"name"`
	PlannedStart         *string  `yaml:"planned_start,omitempty" json:"planned_start,omitempty"`
	PlannedEnd           *string  `yaml:"planned_end,omitempty" json:"planned_end,omitempty"`
	ActualStart          *string  `yaml:"actual_start,omitempty" json:"actual_start,omitempty"`
	ActualEnd            *string  `yaml:"actual_end,omitempty" json:"actual_end,omitempty"`
	BaselineStart        *string  `yaml:"baseline_start,omitempty" json:"baseline_start,omitempty"`
	BaselineEnd          *string  `yaml:"baseline_end,omitempty" json:"baseline_end,omitempty"`
	DurationDays         *int     `yaml:"duration_days,omitempty" json:"duration_days,omitempty"`
	BaselineDurationDays *int     `yaml:"baseline_duration_days,omitempty" json:"baseline_duration_days,omitempty"`
	CompletionPct        *int     `yaml:"completion_pct,omitempty" json:"completion_pct,omitempty"`
	Status               string   `yaml:"status,omitempty" json:"status,omitempty"`
	Priority             string   `yaml:"priority,omitempty" json:"priority,omitempty"`
	ResourceRef          string   `yaml:"resource_ref,omitempty" json:"resource_ref,omitempty"`
	EffortHours          *float64 `yaml:"effort_hours,omitempty" json:"effort_hours,omitempty"`
	Color                string   `yaml:"color,omitempty" json:"color,omitempty"`
	Critical             bool     `yaml:"critical,omitempty" json:"critical,omitempty"`
}

type MilestoneImport struct {
	Name          string  `yaml:"name" json:"name"`
	TargetDate    *string `yaml:"target_date,omitempty" json:"target_date,omitempty"`
	ActualDate    *string `yaml:"actual_date,omitempty" json:"actual_date,omitempty"`
	Type          string  `yaml:"type,omitempty" json:"type,omitempty"`
	Critical      bool    `yaml:"critical,omitempty" json:"critical,omitempty"`
	CompletionPct *int    `yaml:"completion_pct,omitempty" json:"completion_pct,omitempty"`
	Color         string  `yaml:"color,omitempty" json:"color,omitempty"`
}

// LoadImportSchema reads and parses a YAML or JSON import file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data)
}

// ParseImportSchema decodes an import document. Unknown keys are rejected so
// that typos such as "planed_start" do not silently drop dates.
func ParseImportSchema(data []byte) (*ImportSchema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var schema ImportSchema
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
