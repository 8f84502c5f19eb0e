package client

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/MKhiriev/go-courses-api/models"
)

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	return t
}

func renderUsers(out io.Writer, users []models.UserProjection) {
	t := newTable(out)
	t.AppendHeader(table.Row{"ID", "First Name", "Last Name", "Email"})
	for _, u := range users {
		t.AppendRow(table.Row{u.UserID, u.FirstName, u.LastName, u.EmailAddress})
	}
	t.AppendFooter(table.Row{"", "", "Total", len(users)})
	t.Render()
}

func renderCourses(out io.Writer, courses []models.CourseWithOwner) {
	t := newTable(out)
	t.AppendHeader(table.Row{"ID", "Title", "Estimated Time", "Owner"})
	for _, c := range courses {
		t.AppendRow(table.Row{c.CourseID, c.Title, orDash(c.EstimatedTime), c.User.EmailAddress})
	}
	t.AppendFooter(table.Row{"", "", "Total", len(courses)})
	t.Render()
}

func renderCourse(out io.Writer, course models.CourseWithOwner) {
	t := newTable(out)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Colors: text.Colors{text.Bold}},
		{Number: 2, WidthMax: 80},
	})
	t.AppendRows([]table.Row{
		{"ID", course.CourseID},
		{"Title", course.Title},
		{"Description", course.Description},
		{"Estimated Time", orDash(course.EstimatedTime)},
		{"Materials Needed", orDash(course.MaterialsNeeded)},
		{"Owner", course.User.FirstName + " " + course.User.LastName + " <" + course.User.EmailAddress + ">"},
	})
	t.Render()
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
