package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddTimeToDate(t *testing.T) {
	date := time.Date(2018, time.March, 1, 6, 0, 0, 0, time.UTC)
	clock := time.Date(0, time.January, 1, 12, 40, 0, 0, time.UTC)

	combined := AddTimeToDate(date, clock)

	assert.Equal(t, time.Date(2018, time.March, 1, 12, 40, 0, 0, time.UTC), combined)
}

func TestRemoveDuplicateStrings(t *testing.T) {
	assert.Equal(t, []string{"STN", "WRO"}, RemoveDuplicateStrings([]string{"STN", "WRO", "STN", ""}))
	assert.Nil(t, RemoveDuplicateStrings([]string{}))
}

func TestInPlaceFilter(t *testing.T) {
	values := []int{1, 2, 3, 4, 5}
	InPlaceFilter(&values, func(v int) bool {
		return v%2 == 0
	})

	assert.Equal(t, []int{2, 4}, values)
}
