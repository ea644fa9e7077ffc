package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embarques/fletes/internal/domain"
	"github.com/embarques/fletes/internal/service"
)

func TestReportService_Monthly(t *testing.T) {
	var gotQuery domain.FreightQuery
	repo := &mockFreightRepo{listByPeriod: func(_ context.Context, q domain.FreightQuery) ([]domain.FreightView, error) {
		gotQuery = q
		return []domain.FreightView{
			view(1, day(2024, time.March, 10), ptr(int64(500)), ptr(int64(50)), ptr(int64(20))),
		}, nil
	}}
	svc := service.NewReportService(repo)

	r, err := svc.Monthly(context.Background(), 2024, 3)

	require.NoError(t, err)
	assert.Equal(t, *day(2024, time.March, 1), gotQuery.From)
	assert.Equal(t, *day(2024, time.April, 1), gotQuery.To)
	assert.Equal(t, domain.IDDescending, gotQuery.Order.TieBreak)
	assert.Equal(t, "Reporte_Fletes_marzo_2024", r.FileBase)
	assert.Equal(t, int64(570), r.Rows[0].Total)
	assert.Nil(t, r.Totals)
}

func TestReportService_Monthly_InvalidPeriod(t *testing.T) {
	repo := &mockFreightRepo{listByPeriod: func(context.Context, domain.FreightQuery) ([]domain.FreightView, error) {
		t.Fatal("repo must not be called")
		return nil, nil
	}}
	svc := service.NewReportService(repo)

	for _, tc := range []struct{ year, month int }{{2024, 13}, {2024, 0}, {1999, 5}, {2101, 1}} {
		_, err := svc.Monthly(context.Background(), tc.year, tc.month)
		require.ErrorIs(t, err, domain.ErrValidation, "%d/%d", tc.month, tc.year)
	}
}

func TestReportService_Monthly_NoData(t *testing.T) {
	repo := &mockFreightRepo{listByPeriod: func(context.Context, domain.FreightQuery) ([]domain.FreightView, error) {
		return []domain.FreightView{}, nil
	}}
	svc := service.NewReportService(repo)

	_, err := svc.Monthly(context.Background(), 2024, 4)

	require.ErrorIs(t, err, domain.ErrNoData)
}

func TestReportService_Range(t *testing.T) {
	var gotQuery domain.FreightQuery
	repo := &mockFreightRepo{listByPeriod: func(_ context.Context, q domain.FreightQuery) ([]domain.FreightView, error) {
		gotQuery = q
		return []domain.FreightView{
			view(1, day(2024, time.March, 4), ptr(int64(500)), ptr(int64(50)), ptr(int64(20))),
			view(2, day(2024, time.March, 29), ptr(int64(300)), ptr(int64(0)), ptr(int64(10))),
		}, nil
	}}
	svc := service.NewReportService(repo)

	// Time of day on the bounds is ignored.
	start := time.Date(2024, time.March, 1, 15, 30, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 31, 8, 0, 0, 0, time.UTC)
	r, err := svc.Range(context.Background(), start, end)

	require.NoError(t, err)
	assert.Equal(t, *day(2024, time.March, 1), gotQuery.From)
	assert.Equal(t, *day(2024, time.April, 1), gotQuery.To)
	assert.Equal(t, domain.IDAscending, gotQuery.Order.TieBreak)
	assert.Equal(t, "REPORTE DE FLETES - DEL 01/03/2024 AL 31/03/2024", r.Title)
	require.NotNil(t, r.Totals)
	assert.Equal(t, int64(880), r.Totals.Total)
}

func TestReportService_Monthly_OrdersRows(t *testing.T) {
	repo := &mockFreightRepo{listByPeriod: func(context.Context, domain.FreightQuery) ([]domain.FreightView, error) {
		return []domain.FreightView{
			view(4, day(2024, time.March, 12), nil, nil, nil),
			view(2, day(2024, time.March, 5), nil, nil, nil),
			view(7, day(2024, time.March, 5), nil, nil, nil),
		}, nil
	}}
	svc := service.NewReportService(repo)

	r, err := svc.Monthly(context.Background(), 2024, 3)

	require.NoError(t, err)
	ids := make([]int64, len(r.Rows))
	for i, row := range r.Rows {
		ids[i] = row.FreightID
	}
	assert.Equal(t, []int64{7, 2, 4}, ids)
}

func TestReportService_Range_StartAfterEnd(t *testing.T) {
	svc := service.NewReportService(&mockFreightRepo{})

	_, err := svc.Range(context.Background(), *day(2024, 4, 2), *day(2024, 4, 1))

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestReportService_Range_RepoError(t *testing.T) {
	boom := errors.New("timeout")
	repo := &mockFreightRepo{listByPeriod: func(context.Context, domain.FreightQuery) ([]domain.FreightView, error) {
		return nil, boom
	}}
	svc := service.NewReportService(repo)

	_, err := svc.Range(context.Background(), *day(2024, 4, 1), *day(2024, 4, 1))

	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrNoData)
}

func TestReportService_MonthsWithData(t *testing.T) {
	repo := &mockFreightRepo{distinctMonths: func(context.Context) ([]domain.YearMonth, error) {
		return []domain.YearMonth{{Year: 2024, Month: 3}, {Year: 2024, Month: 1}}, nil
	}}
	svc := service.NewReportService(repo)

	got, err := svc.MonthsWithData(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.MonthWithData{
		{Year: 2024, Month: 3, MonthName: "marzo", Label: "marzo 2024"},
		{Year: 2024, Month: 1, MonthName: "enero", Label: "enero 2024"},
	}, got)
}

func TestReportService_MonthsWithData_Empty(t *testing.T) {
	repo := &mockFreightRepo{distinctMonths: func(context.Context) ([]domain.YearMonth, error) { return nil, nil }}
	svc := service.NewReportService(repo)

	got, err := svc.MonthsWithData(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
