package records

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/eldercare/internal/common"
)

type Appointment struct {
	ID    string    `json:"id,omitempty"`
	Title string    `json:"title"`
	When  time.Time `json:"when"`
	Place string    `json:"place"`
	Note  string    `json:"note"`
}

func (a Appointment) RecordID() string             { return a.ID }
func (a Appointment) WithID(id string) Appointment { a.ID = id; return a }
func (a Appointment) Validate() error              { return requireField("title", a.Title) }

type Medication struct {
	ID    string   `json:"id,omitempty"`
	Name  string   `json:"name"`
	Dose  string   `json:"dose"`
	Unit  string   `json:"unit"`
	Freq  string   `json:"freq"`
	Times []string `json:"times"`
	Note  string   `json:"note"`
}

func (m Medication) RecordID() string            { return m.ID }
func (m Medication) WithID(id string) Medication { m.ID = id; return m }
func (m Medication) Validate() error             { return requireField("name", m.Name) }

// Default values offered by the medication form.
const (
	DefaultUnit = "tablet"
	DefaultFreq = "once a day"
)

type HealthLog struct {
	ID     string    `json:"id,omitempty"`
	DT     time.Time `json:"dt"`
	BP     string    `json:"bp"`
	HR     string    `json:"hr"`
	Weight string    `json:"weight"`
	Temp   string    `json:"temp"`
	Mood   string    `json:"mood"`
	Note   string    `json:"note"`
}

func (h HealthLog) RecordID() string           { return h.ID }
func (h HealthLog) WithID(id string) HealthLog { h.ID = id; return h }

// Validate accepts any health log; every measurement is optional.
func (h HealthLog) Validate() error { return nil }

type Reminder struct {
	ID    string    `json:"id,omitempty"`
	Type  string    `json:"type"`
	Title string    `json:"title"`
	When  time.Time `json:"when"`
	Note  string    `json:"note"`
}

func (r Reminder) RecordID() string          { return r.ID }
func (r Reminder) WithID(id string) Reminder { r.ID = id; return r }
func (r Reminder) Validate() error           { return requireField("title", r.Title) }

// ParseTimes splits a comma-separated list of dose times, dropping blanks.
func ParseTimes(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func requireField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", common.ErrValidation, name)
	}
	return nil
}
