package callsheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Normalize prepares freshly decoded document for layout. It makes sure
// document has an ID and that every well-formed section carries explicit
// order, so that sort stability does not depend on array positions surviving
// transport. Malformed sections are left in place - paginator drops them.
func (doc *Document) Normalize(log *zap.Logger) error {
	if len(strings.TrimSpace(doc.ID)) == 0 {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("unable to generate call sheet ID: %w", err)
		}
		log.Warn("Call sheet has no ID, assigning", zap.Stringer("id", id))
		doc.ID = id.String()
	}

	assigned := 0
	for i, s := range doc.Sections {
		if !s.WellFormed() || s.Order != nil {
			continue
		}
		order := float64(i)
		s.Order = &order
		assigned++
	}
	if assigned > 0 {
		log.Debug("Assigned explicit section order", zap.Int("count", assigned))
	}
	return nil
}

// VariableContext assembles values for header variable tokens from project
// and day details. Document level custom variables override derived ones.
// Only non-empty values are included so that unbound tokens stay visible.
func VariableContext(doc *Document) map[string]string {
	vars := make(map[string]string)

	set := func(name, value string) {
		if value = strings.TrimSpace(value); len(value) > 0 {
			vars[name] = value
		}
	}

	set("projectName", doc.Project.Name)
	set("clientName", doc.Project.Client)
	set("producer", doc.Project.Producer)
	set("director", doc.Project.Director)
	set("callSheetTitle", doc.Title)

	d := &doc.Day
	set("date", d.Date)
	if d.DayNumber > 0 {
		set("dayNumber", strconv.Itoa(d.DayNumber))
	}
	if d.TotalDays > 0 {
		set("totalDays", strconv.Itoa(d.TotalDays))
	}
	if d.DayNumber > 0 && d.TotalDays > 0 {
		set("dayOfDays", fmt.Sprintf("Day %d of %d", d.DayNumber, d.TotalDays))
	}
	set("crewCall", d.CrewCall)
	set("shootingCall", d.ShootingCall)
	set("breakfast", d.Breakfast)
	set("lunch", d.Lunch)
	set("estimatedWrap", d.Wrap)
	set("sunrise", d.Sunrise)
	set("sunset", d.Sunset)
	set("weather", d.Weather.Summary)
	set("locationName", d.Location.Name)
	set("locationAddress", d.Location.Address)

	for k, v := range doc.Variables {
		set(strings.TrimPrefix(k, "@"), v)
	}
	return vars
}
