package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"asset-guardian/internal/entities"
	"asset-guardian/internal/events"
	"asset-guardian/internal/reliability"
	apperrors "asset-guardian/pkg/errors"
	"asset-guardian/pkg/eventbus"
	"asset-guardian/pkg/types"
)

// fakeTxManager выполняет fn без транзакции: репозитории получают nil и работают "через пул".
type fakeTxManager struct{ calls int }

func (m *fakeTxManager) RunInTransaction(_ context.Context, fn func(tx pgx.Tx) error) error {
	m.calls++
	return fn(nil)
}

type fakeBus struct {
	mu     sync.Mutex
	events []events.RecordChangedEvent
}

func (b *fakeBus) Publish(_ context.Context, event eventbus.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if e, ok := event.(events.RecordChangedEvent); ok {
		b.events = append(b.events, e)
	}
}

func (b *fakeBus) published() []events.RecordChangedEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]events.RecordChangedEvent(nil), b.events...)
}

// --- assets ---

type fakeAssetRepo struct {
	mu     sync.Mutex
	assets map[string]entities.Asset
}

func newFakeAssetRepo() *fakeAssetRepo {
	return &fakeAssetRepo{assets: make(map[string]entities.Asset)}
}

func (r *fakeAssetRepo) GetAssets(_ context.Context, _ types.Filter) ([]entities.Asset, uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]entities.Asset, 0, len(r.assets))
	for _, a := range r.assets {
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list, uint64(len(list)), nil
}

func (r *fakeAssetRepo) FindAsset(_ context.Context, id string) (*entities.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.assets[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &a, nil
}

func (r *fakeAssetRepo) FindAssetForUpdateInTx(ctx context.Context, _ pgx.Tx, id string) (*entities.Asset, error) {
	return r.FindAsset(ctx, id)
}

func (r *fakeAssetRepo) ExistsByCodeOrSerial(_ context.Context, code, serialNumber, excludeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, a := range r.assets {
		if id == excludeID {
			continue
		}
		if a.Code == code || a.SerialNumber == serialNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAssetRepo) CreateAsset(_ context.Context, asset *entities.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	asset.CreatedAt = time.Now()
	asset.UpdatedAt = asset.CreatedAt
	r.assets[asset.ID] = *asset
	return nil
}

func (r *fakeAssetRepo) UpdateAsset(_ context.Context, asset *entities.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.assets[asset.ID]; !ok {
		return apperrors.ErrNotFound
	}
	asset.UpdatedAt = time.Now()
	r.assets[asset.ID] = *asset
	return nil
}

func (r *fakeAssetRepo) DeleteAsset(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.assets[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.assets, id)
	return nil
}

func (r *fakeAssetRepo) UpdateMetricsInTx(_ context.Context, _ pgx.Tx, id string, metrics reliability.Metrics, lastMaintenance null.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.assets[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	a.ApplyMetrics(metrics)
	a.LastMaintenance = lastMaintenance
	r.assets[id] = a
	return nil
}

// --- maintenance ---

type fakeMaintenanceRepo struct {
	mu      sync.Mutex
	records map[string]entities.MaintenanceRecord
}

func newFakeMaintenanceRepo() *fakeMaintenanceRepo {
	return &fakeMaintenanceRepo{records: make(map[string]entities.MaintenanceRecord)}
}

func (r *fakeMaintenanceRepo) GetMaintenanceRecords(_ context.Context, _ types.Filter) ([]entities.MaintenanceRecord, uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]entities.MaintenanceRecord, 0, len(r.records))
	for _, m := range r.records {
		list = append(list, m)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list, uint64(len(list)), nil
}

func (r *fakeMaintenanceRepo) FindMaintenanceRecord(_ context.Context, id string) (*entities.MaintenanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.records[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &m, nil
}

func (r *fakeMaintenanceRepo) FindMaintenanceRecordInTx(ctx context.Context, _ pgx.Tx, id string) (*entities.MaintenanceRecord, error) {
	return r.FindMaintenanceRecord(ctx, id)
}

func (r *fakeMaintenanceRepo) GetAssetHistory(_ context.Context, assetID string) ([]entities.MaintenanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]entities.MaintenanceRecord, 0)
	for _, m := range r.records {
		if m.AssetID == assetID {
			list = append(list, m)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.Before(list[j].Date) })
	return list, nil
}

func (r *fakeMaintenanceRepo) GetAssetEventsInTx(ctx context.Context, _ pgx.Tx, assetID string) ([]reliability.Event, error) {
	history, _ := r.GetAssetHistory(ctx, assetID)
	result := make([]reliability.Event, 0, len(history))
	for _, m := range history {
		result = append(result, reliability.Event{Date: m.Date, Type: m.Type})
	}
	return result, nil
}

func (r *fakeMaintenanceRepo) CreateMaintenanceRecordInTx(_ context.Context, _ pgx.Tx, record *entities.MaintenanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	r.records[record.ID] = *record
	return nil
}

func (r *fakeMaintenanceRepo) UpdateMaintenanceRecordInTx(_ context.Context, _ pgx.Tx, record *entities.MaintenanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[record.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.records[record.ID] = *record
	return nil
}

func (r *fakeMaintenanceRepo) DeleteMaintenanceRecordInTx(_ context.Context, _ pgx.Tx, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

// --- fmea ---

type fakeFMEARepo struct {
	mu      sync.Mutex
	records map[string]entities.FMEARecord
}

func newFakeFMEARepo() *fakeFMEARepo {
	return &fakeFMEARepo{records: make(map[string]entities.FMEARecord)}
}

func (r *fakeFMEARepo) GetFMEARecords(_ context.Context, _ types.Filter) ([]entities.FMEARecord, uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]entities.FMEARecord, 0, len(r.records))
	for _, f := range r.records {
		list = append(list, f)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].RPN > list[j].RPN })
	return list, uint64(len(list)), nil
}

func (r *fakeFMEARepo) FindFMEARecord(_ context.Context, id string) (*entities.FMEARecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.records[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &f, nil
}

func (r *fakeFMEARepo) FindFMEARecordForUpdateInTx(ctx context.Context, _ pgx.Tx, id string) (*entities.FMEARecord, error) {
	return r.FindFMEARecord(ctx, id)
}

func (r *fakeFMEARepo) CreateFMEARecord(_ context.Context, record *entities.FMEARecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = *record
	return nil
}

func (r *fakeFMEARepo) UpdateFMEARecordInTx(_ context.Context, _ pgx.Tx, record *entities.FMEARecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[record.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.records[record.ID] = *record
	return nil
}

func (r *fakeFMEARepo) DeleteFMEARecord(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

// --- reports ---

type fakeReportRepo struct {
	mu      sync.Mutex
	reports map[string]entities.Report
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[string]entities.Report)}
}

func (r *fakeReportRepo) GetReports(_ context.Context, _ types.Filter) ([]entities.Report, uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]entities.Report, 0, len(r.reports))
	for _, rep := range r.reports {
		list = append(list, rep)
	}
	return list, uint64(len(list)), nil
}

func (r *fakeReportRepo) FindReport(_ context.Context, id string) (*entities.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep, ok := r.reports[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &rep, nil
}

func (r *fakeReportRepo) CreateReport(_ context.Context, report *entities.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports[report.ID] = *report
	return nil
}

func (r *fakeReportRepo) UpdateReport(_ context.Context, report *entities.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reports[report.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.reports[report.ID] = *report
	return nil
}

func (r *fakeReportRepo) DeleteReport(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reports[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.reports, id)
	return nil
}

// --- сборка сервисов ---

type testEnv struct {
	assets      *fakeAssetRepo
	maintenance *fakeMaintenanceRepo
	fmea        *fakeFMEARepo
	reports     *fakeReportRepo
	tx          *fakeTxManager
	bus         *fakeBus

	assetService       AssetServiceInterface
	maintenanceService MaintenanceServiceInterface
	fmeaService        FMEAServiceInterface
	reportService      ReportServiceInterface
}

func newTestEnv() *testEnv {
	logger := zap.NewNop()
	env := &testEnv{
		assets:      newFakeAssetRepo(),
		maintenance: newFakeMaintenanceRepo(),
		fmea:        newFakeFMEARepo(),
		reports:     newFakeReportRepo(),
		tx:          &fakeTxManager{},
		bus:         &fakeBus{},
	}

	base := NewBaseService(nil, env.bus, logger)
	recalculator := NewMetricsRecalculator(env.assets, env.maintenance, reliability.DefaultConfig(), logger)

	env.assetService = NewAssetService(base, env.assets, env.maintenance, env.tx, recalculator, logger)
	env.maintenanceService = NewMaintenanceService(base, env.maintenance, env.assets, env.tx, recalculator, logger)
	env.fmeaService = NewFMEAService(base, env.fmea, env.assets, env.tx, logger)
	env.reportService = NewReportService(base, env.reports, env.assets, logger)
	return env
}
