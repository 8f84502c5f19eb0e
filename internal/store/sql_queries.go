package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-courses-api/models"
)

var (
	userColumns = []string{"id", "first_name", "last_name", "email_address", "password"}

	courseWithOwnerColumns = []string{
		"c.id",
		"c.title",
		"c.description",
		"c.estimated_time",
		"c.materials_needed",
		"c.user_id",
		"u.id",
		"u.first_name",
		"u.last_name",
		"u.email_address",
	}
)

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns("first_name", "last_name", "email_address", "password").
		Values(user.FirstName, user.LastName, user.EmailAddress, user.Password).
		Suffix("RETURNING id").
		ToSql()
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email_address": email}).
		Limit(1).
		ToSql()
}

// buildListUsersQuery never selects the password column.
func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("id", "first_name", "last_name", "email_address").
		From(models.User{}.TableName()).
		OrderBy("id").
		ToSql()
}

func buildCreateCourseQuery(b sq.StatementBuilderType, course models.Course) (string, []any, error) {
	return b.Insert(models.Course{}.TableName()).
		Columns("title", "description", "estimated_time", "materials_needed", "user_id").
		Values(course.Title, course.Description, course.EstimatedTime, course.MaterialsNeeded, course.UserID).
		Suffix("RETURNING id").
		ToSql()
}

func selectCoursesWithOwner(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(courseWithOwnerColumns...).
		From("courses c").
		Join("users u ON u.id = c.user_id")
}

func buildListCoursesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return selectCoursesWithOwner(b).
		OrderBy("c.id").
		ToSql()
}

func buildFindCourseByIDQuery(b sq.StatementBuilderType, courseID int64) (string, []any, error) {
	return selectCoursesWithOwner(b).
		Where(sq.Eq{"c.id": courseID}).
		ToSql()
}

// buildUpdateCourseQuery overwrites the four mutable attributes of a course
// owned by update.UserID.
func buildUpdateCourseQuery(b sq.StatementBuilderType, update models.CourseUpdate) (string, []any, error) {
	return b.Update(models.Course{}.TableName()).
		Set("title", update.Title).
		Set("description", update.Description).
		Set("estimated_time", update.EstimatedTime).
		Set("materials_needed", update.MaterialsNeeded).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": update.CourseID, "user_id": update.UserID}).
		ToSql()
}

func buildDeleteCourseQuery(b sq.StatementBuilderType, courseID, userID int64) (string, []any, error) {
	return b.Delete(models.Course{}.TableName()).
		Where(sq.Eq{"id": courseID, "user_id": userID}).
		ToSql()
}
