// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Course is a persisted course owned by exactly one [User].
type Course struct {
	// CourseID is the store-assigned identifier.
	CourseID int64 `json:"id"`

	Title       string `json:"title"`
	Description string `json:"description"`

	// EstimatedTime and MaterialsNeeded are optional free-form attributes;
	// nil is serialised as JSON null.
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`

	// UserID references the owning user. Only the owner may update or
	// delete the course.
	UserID int64 `json:"userId"`
}

// IsOwnedBy reports whether the course belongs to the user with userID.
func (c Course) IsOwnedBy(userID int64) bool {
	return c.UserID == userID
}

// TableName returns the name of the database table
// associated with the Course model.
func (c Course) TableName() string {
	return "courses"
}

// CourseWithOwner is the public read shape of a course: the course itself
// with its owner's limited projection embedded under the "User" key.
type CourseWithOwner struct {
	Course
	User UserProjection `json:"User"`
}

// CourseRequest is the create/update payload for a course. Pointer fields
// distinguish an omitted attribute (nil) from an explicitly empty one ("").
type CourseRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`

	// UserID is accepted for compatibility with existing clients. When set
	// it must match the authenticated user.
	UserID *int64 `json:"userId,omitempty"`
}

// CourseUpdate carries the four mutable course attributes after they have
// been validated. It is what the store persists on PUT.
type CourseUpdate struct {
	CourseID        int64
	UserID          int64
	Title           string
	Description     string
	EstimatedTime   *string
	MaterialsNeeded *string
}
