package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedSampleContent(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db, newTestConfig())

	require.NoError(t, svc.SeedSampleContent())

	tenders, err := svc.GetTenders()
	require.NoError(t, err)
	assert.NotEmpty(t, tenders)

	testimonials, err := svc.GetTestimonials()
	require.NoError(t, err)
	assert.NotEmpty(t, testimonials)

	// 重复执行不产生重复数据
	require.NoError(t, svc.SeedSampleContent())

	again, err := svc.GetTenders()
	require.NoError(t, err)
	assert.Len(t, again, len(tenders))
}

func TestGetTenderByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db, newTestConfig())

	require.NoError(t, svc.SeedSampleContent())

	tenders, err := svc.GetTenders()
	require.NoError(t, err)
	require.NotEmpty(t, tenders)

	found, err := svc.GetTenderByID(tenders[0].ID)
	require.NoError(t, err)
	assert.Equal(t, tenders[0].Title, found.Title)

	_, err = svc.GetTenderByID(9999)
	assert.ErrorIs(t, err, ErrTenderNotFound)
}
