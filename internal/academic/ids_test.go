package academic

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNextID_EmptyCollection(t *testing.T) {
	require.Equal(t, "E1", NextID(nil, StudentPrefix))
	require.Equal(t, "C1", NextID([]string{}, CoursePrefix))
}

func TestNextID_MaxPlusOne(t *testing.T) {
	require.Equal(t, "E4", NextID([]string{"E1", "E3"}, StudentPrefix),
		"gaps below the max are not filled")
	require.Equal(t, "I11", NextID([]string{"I2", "I10"}, RegistrationPrefix),
		"suffixes compare numerically, not lexically")
}

func TestNextID_ReusesNumberAfterDeletion(t *testing.T) {
	ids := []string{"M1", "M2", "M3"}

	// Dropping the highest-numbered id frees its number for the next
	// creation.
	require.Equal(t, "M3", NextID(ids[:2], GradeRecordPrefix))

	// Dropping a middle id changes nothing.
	require.Equal(t, "M4", NextID([]string{"M1", "M3"}, GradeRecordPrefix))
}

func TestNextID_IgnoresForeignPrefixes(t *testing.T) {
	require.Equal(t, "E2", NextID([]string{"E1", "C7", "I9"}, StudentPrefix))
}

func TestNextID_IgnoresMalformedSuffixes(t *testing.T) {
	require.Equal(t, "E3", NextID([]string{"Exx", "E2", "E"}, StudentPrefix))
}

func TestNextID_NeverCollides(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nums := rapid.SliceOfDistinct(rapid.IntRange(1, 500), rapid.ID[int]).Draw(t, "nums")
		ids := make([]string, len(nums))
		maxNum := 0
		for i, n := range nums {
			ids[i] = fmt.Sprintf("E%d", n)
			if n > maxNum {
				maxNum = n
			}
		}

		next := NextID(ids, StudentPrefix)
		require.Equal(t, fmt.Sprintf("E%d", maxNum+1), next)
		require.NotContains(t, ids, next)
	})
}
