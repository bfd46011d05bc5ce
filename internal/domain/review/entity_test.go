//go:build unit

package review_test

import (
	"strings"
	"testing"

	"tablebook/internal/domain/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating(t *testing.T) {
	cases := []struct {
		name  string
		value int
		errIs error
	}{
		{name: "minimum valid rating", value: 1},
		{name: "maximum valid rating", value: 5},
		{name: "below minimum", value: 0, errIs: review.ErrInvalidRating},
		{name: "above maximum", value: 6, errIs: review.ErrInvalidRating},
		{name: "negative", value: -1, errIs: review.ErrInvalidRating},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rating, err := review.NewRating(c.value)
			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.value, rating.Value())
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestNewComment(t *testing.T) {
	t.Run("empty comment is valid", func(t *testing.T) {
		c, err := review.NewComment("")
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
		assert.Nil(t, c.Ptr())
	})

	t.Run("whitespace collapses to empty", func(t *testing.T) {
		c, err := review.NewComment("   ")
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		c, err := review.NewComment("  great meal  ")
		require.NoError(t, err)
		assert.Equal(t, "great meal", c.String())
		require.NotNil(t, c.Ptr())
		assert.Equal(t, "great meal", *c.Ptr())
	})

	t.Run("maximum length", func(t *testing.T) {
		_, err := review.NewComment(strings.Repeat("a", review.MaxCommentLength))
		require.NoError(t, err)

		_, err = review.NewComment(strings.Repeat("a", review.MaxCommentLength+1))
		require.ErrorIs(t, err, review.ErrCommentTooLong)
	})
}

func TestNewReview(t *testing.T) {
	rating, err := review.NewRating(4)
	require.NoError(t, err)
	comment, err := review.NewComment("solid")
	require.NoError(t, err)

	dinerID := uuid.New()
	r := review.NewReview(42, dinerID, rating, comment)

	assert.Equal(t, int64(42), r.ReservationID())
	assert.Equal(t, dinerID, r.DinerID())
	assert.Equal(t, 4, r.Rating().Value())
	assert.Equal(t, "solid", r.Comment().String())
}
