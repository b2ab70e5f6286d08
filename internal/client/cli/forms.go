package cli

import (
	"strings"

	"github.com/dmitrijs2005/eldercare/internal/client/records"
)

const defaultReminderType = "general"

func appointmentCommands(s *records.Store[records.Appointment]) recordCommands {
	return &recordCmd[records.Appointment]{
		store:   s,
		noun:    "appointment",
		columns: []string{"WHEN", "TITLE", "PLACE", "NOTE"},
		row: func(a records.Appointment) []string {
			return []string{formatTime(a.When), a.Title, a.Place, a.Note}
		},
		form: func(p *prompter, a records.Appointment) (records.Appointment, error) {
			if a.When.IsZero() {
				a.When = p.now()
			}

			var err error
			if a.Title, err = p.text("Title", a.Title); err != nil {
				return a, err
			}
			if a.When, err = p.when("When", a.When); err != nil {
				return a, err
			}
			if a.Place, err = p.text("Place", a.Place); err != nil {
				return a, err
			}
			a.Note, err = p.text("Note", a.Note)
			return a, err
		},
	}
}

func medicationCommands(s *records.Store[records.Medication]) recordCommands {
	return &recordCmd[records.Medication]{
		store:   s,
		noun:    "medication",
		columns: []string{"NAME", "DOSE", "FREQUENCY", "TIMES", "NOTE"},
		row: func(m records.Medication) []string {
			return []string{m.Name, strings.TrimSpace(m.Dose + " " + m.Unit), m.Freq, strings.Join(m.Times, ", "), m.Note}
		},
		form: func(p *prompter, m records.Medication) (records.Medication, error) {
			if m.Unit == "" {
				m.Unit = records.DefaultUnit
			}
			if m.Freq == "" {
				m.Freq = records.DefaultFreq
			}

			var err error
			if m.Name, err = p.text("Name", m.Name); err != nil {
				return m, err
			}
			if m.Dose, err = p.text("Dose", m.Dose); err != nil {
				return m, err
			}
			if m.Unit, err = p.text("Unit", m.Unit); err != nil {
				return m, err
			}
			if m.Freq, err = p.text("Frequency", m.Freq); err != nil {
				return m, err
			}
			times, err := p.text("Times (comma separated, e.g. 08:00, 20:00)", strings.Join(m.Times, ", "))
			if err != nil {
				return m, err
			}
			m.Times = records.ParseTimes(times)
			m.Note, err = p.text("Note", m.Note)
			return m, err
		},
	}
}

func healthLogCommands(s *records.Store[records.HealthLog]) recordCommands {
	return &recordCmd[records.HealthLog]{
		store:   s,
		noun:    "health log",
		columns: []string{"DATE", "BP", "HR", "WEIGHT", "TEMP", "MOOD", "NOTE"},
		row: func(h records.HealthLog) []string {
			return []string{formatTime(h.DT), h.BP, h.HR, h.Weight, h.Temp, h.Mood, h.Note}
		},
		form: func(p *prompter, h records.HealthLog) (records.HealthLog, error) {
			if h.DT.IsZero() {
				h.DT = p.now()
			}

			var err error
			if h.DT, err = p.when("Date", h.DT); err != nil {
				return h, err
			}
			fields := []struct {
				label string
				v     *string
			}{
				{"Blood pressure", &h.BP},
				{"Heart rate", &h.HR},
				{"Weight", &h.Weight},
				{"Temperature", &h.Temp},
				{"Mood", &h.Mood},
				{"Note", &h.Note},
			}
			for _, f := range fields {
				if *f.v, err = p.text(f.label, *f.v); err != nil {
					return h, err
				}
			}
			return h, nil
		},
	}
}

func reminderCommands(s *records.Store[records.Reminder]) recordCommands {
	return &recordCmd[records.Reminder]{
		store:   s,
		noun:    "reminder",
		columns: []string{"WHEN", "TYPE", "TITLE", "NOTE"},
		row: func(r records.Reminder) []string {
			return []string{formatTime(r.When), r.Type, r.Title, r.Note}
		},
		form: func(p *prompter, r records.Reminder) (records.Reminder, error) {
			if r.Type == "" {
				r.Type = defaultReminderType
			}
			if r.When.IsZero() {
				r.When = p.now()
			}

			var err error
			if r.Type, err = p.text("Type", r.Type); err != nil {
				return r, err
			}
			if r.Title, err = p.text("Title", r.Title); err != nil {
				return r, err
			}
			if r.When, err = p.when("When", r.When); err != nil {
				return r, err
			}
			r.Note, err = p.text("Note", r.Note)
			return r, err
		},
	}
}
