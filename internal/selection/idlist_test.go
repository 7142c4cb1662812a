package selection_test

import (
	"testing"

	"github.com/sawwere/team-selection/internal/selection"

	"github.com/stretchr/testify/assert"
)

func TestAppendID(t *testing.T) {
	list := selection.AppendID("", 7)
	assert.Equal(t, "7 ", list)

	list = selection.AppendID(list, 12)
	assert.Equal(t, "7 12 ", list)
}

func TestAppendIDKeepsDuplicates(t *testing.T) {
	list := selection.AppendID(selection.AppendID("", 7), 7)
	assert.Equal(t, "7 7 ", list)
}

func TestRemoveID(t *testing.T) {
	tests := []struct {
		name string
		list string
		id   int64
		want string
	}{
		{name: "removes matching token", list: "2 5 ", id: 2, want: "5 "},
		{name: "removes only token", list: "2 ", id: 2, want: ""},
		{name: "keeps later tokens", list: "10 2 30 ", id: 2, want: "10 30 "},
		{name: "absent id is a no-op", list: "2 5 ", id: 9, want: "2 5 "},
		{name: "no partial match", list: "25 ", id: 2, want: "25 "},
		{name: "removes first duplicate only", list: "7 7 ", id: 7, want: "7 "},
		{name: "empty list", list: "", id: 2, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, selection.RemoveID(tt.list, tt.id))
		})
	}
}

func TestContainsID(t *testing.T) {
	assert.True(t, selection.ContainsID("2 5 ", 5))
	assert.False(t, selection.ContainsID("2 5 ", 25))
	assert.False(t, selection.ContainsID("25 ", 2))
	assert.False(t, selection.ContainsID("", 1))
}

func TestParseIDs(t *testing.T) {
	assert.Equal(t, []int64{7, 12}, selection.ParseIDs("7 12 "))
	assert.Nil(t, selection.ParseIDs(""))
	assert.Nil(t, selection.ParseIDs("   "))
	assert.Equal(t, []int64{3}, selection.ParseIDs(" 3 "))
}
