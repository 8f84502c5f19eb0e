// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-courses-api/models"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildCreateUserQuery(t *testing.T) {
	user := models.User{FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com", Password: "digest"}

	query, args, err := buildCreateUserQuery(dollar, user)
	require.NoError(t, err)

	assert.Equal(t, []any{"Joe", "Smith", "joe@smith.com", "digest"}, args)
	assert.Contains(t, query, "INSERT INTO users")
	assert.Contains(t, query, "$4")
	assert.True(t, strings.HasSuffix(query, "RETURNING id"))
}

func Test_buildCreateUserQuery_QuestionPlaceholders(t *testing.T) {
	query, _, err := buildCreateUserQuery(question, models.User{})
	require.NoError(t, err)

	assert.Contains(t, query, "VALUES (?,?,?,?)")
	assert.NotContains(t, query, "$1")
}

func Test_buildListUsersQuery_OmitsPassword(t *testing.T) {
	query, args, err := buildListUsersQuery(dollar)
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.NotContains(t, strings.ToLower(query), "password")
}

func Test_buildFindCourseByIDQuery(t *testing.T) {
	query, args, err := buildFindCourseByIDQuery(dollar, 9)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from courses c join users u on u.id = c.user_id")
	assert.Contains(t, q, "where c.id = $1")
	assert.Equal(t, []any{int64(9)}, args)
}

func Test_buildUpdateCourseQuery_ScopesToOwner(t *testing.T) {
	update := models.CourseUpdate{CourseID: 3, UserID: 8, Title: "t", Description: "d"}

	query, args, err := buildUpdateCourseQuery(dollar, update)
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE id = $5 AND user_id = $6")
	assert.Contains(t, query, "updated_at = CURRENT_TIMESTAMP")
	require.Len(t, args, 6)
	assert.Equal(t, int64(3), args[4])
	assert.Equal(t, int64(8), args[5])
}

func Test_buildDeleteCourseQuery_ScopesToOwner(t *testing.T) {
	query, args, err := buildDeleteCourseQuery(question, 3, 8)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM courses WHERE id = ? AND user_id = ?", query)
	assert.Equal(t, []any{int64(3), int64(8)}, args)
}
