package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"deadline-tracker/internal/repository/sqlite"
)

func TestTaskMapper_RoundTrip(t *testing.T) {
	mapper := NewTaskMapper()
	ownerID := int64(7)
	domainTask := Task{
		ID:          1,
		Title:       "Read chapter 4",
		TaskType:    "homework",
		Subject:     "Math",
		DueDate:     date("2026-03-10"),
		Description: "pages 80-120",
		IsDone:      true,
		Priority:    PriorityOptional,
		OwnerID:     &ownerID,
	}

	result := mapper.FromDatabase(mapper.ToDatabase(domainTask))

	assert.Equal(t, domainTask, result)
}

func TestTaskMapper_FromDatabaseSlice(t *testing.T) {
	mapper := NewTaskMapper()
	dbTasks := []*sqlite.Task{
		{ID: 1, Title: "Task 1", DueDate: date("2026-03-10")},
		{ID: 2, Title: "Task 2", DueDate: date("2026-03-11")},
	}

	result := mapper.FromDatabaseSlice(dbTasks)

	assert.Len(t, result, 2)
	assert.Equal(t, int64(1), result[0].ID)
	assert.Equal(t, "Task 2", result[1].Title)
}

func TestTaskMapper_FromDatabaseSliceEmpty(t *testing.T) {
	mapper := NewTaskMapper()

	result := mapper.FromDatabaseSlice([]*sqlite.Task{})

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestUserMapper_RoundTrip(t *testing.T) {
	mapper := NewUserMapper()
	domainUser := User{ID: 3, Username: "alice", PasswordHash: "$2a$12$hash"}

	result := mapper.FromDatabase(mapper.ToDatabase(domainUser))

	assert.Equal(t, domainUser, result)
}

func TestSearchOptionsMapper_ToDatabase(t *testing.T) {
	mapper := NewSearchOptionsMapper()
	subject := "Math"
	done := false
	from := date("2026-03-10")
	ownerID := int64(4)

	result := mapper.ToDatabase(SearchOptions{
		Subject: &subject,
		Done:    &done,
		DueFrom: &from,
		OwnerID: &ownerID,
	})

	assert.Equal(t, &subject, result.Subject)
	assert.Equal(t, &done, result.Done)
	assert.Equal(t, &from, result.DueFrom)
	assert.Nil(t, result.DueTo)
	assert.Equal(t, &ownerID, result.OwnerID)
}

func TestNewMapper_CreatesAllSubMappers(t *testing.T) {
	mapper := NewMapper()

	assert.NotNil(t, mapper.Task)
	assert.NotNil(t, mapper.User)
	assert.NotNil(t, mapper.SearchOptions)
}
