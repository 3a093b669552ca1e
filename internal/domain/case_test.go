package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultView(t *testing.T) {
	cases := []struct {
		status CaseStatus
		view   string
	}{
		{CasePendingReferral, "file"},
		{CaseWelcome, "file"},
		{CaseCoDiagnosis, "plan"},
		{CaseSharedPlanning, "plan"},
		{CaseAccompaniment, "notebook"},
		{CaseFollowUp, "notebook"},
		{CaseClosed, "summary"},
	}
	for _, tc := range cases {
		c := &Case{Status: tc.status}
		assert.Equal(t, tc.view, c.DefaultView(), "status=%s", tc.status)
	}
}

func TestActive(t *testing.T) {
	assert.True(t, (&Case{Status: CaseAccompaniment}).Active())
	assert.False(t, (&Case{Status: CaseClosed}).Active())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Fam. R.", (&Case{Name: "Familia Ruiz", Nickname: "Fam. R."}).DisplayName())
	assert.Equal(t, "Familia Ruiz", (&Case{Name: "Familia Ruiz"}).DisplayName())
}

func TestTaskToggle(t *testing.T) {
	task := &Task{Completed: false}
	task.Toggle(testNow)
	assert.True(t, task.Completed)
	assert.Equal(t, testNow, task.UpdatedAt)
	task.Toggle(testNow)
	assert.False(t, task.Completed)
}
