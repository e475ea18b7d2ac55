package handler

import (
	"context"

	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/usecase"
	"clinic-records/pkg/pagination"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var (
	_ usecase.PatientUsecase        = (*mockPatientUsecase)(nil)
	_ usecase.HistoryUsecase        = (*mockHistoryUsecase)(nil)
	_ usecase.RecentActivityUsecase = (*mockRecentActivityUsecase)(nil)
	_ usecase.SearchUsecase         = (*mockSearchUsecase)(nil)
	_ usecase.AuthUsecase           = (*mockAuthUsecase)(nil)
	_ usecase.AuditLogUsecase       = (*mockAuditLogUsecase)(nil)
	_ usecase.ConsultationUsecase   = (*mockConsultationUsecase)(nil)
)

type mockPatientUsecase struct{ mock.Mock }

func (m *mockPatientUsecase) CreatePatient(ctx context.Context, auth entity.AuthContext, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	args := m.Called(ctx, auth, req)
	res, _ := args.Get(0).(*dto.PatientResponse)
	return res, args.Error(1)
}

func (m *mockPatientUsecase) GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientDetailResponse, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*dto.PatientDetailResponse)
	return res, args.Error(1)
}

func (m *mockPatientUsecase) UpdatePatient(ctx context.Context, auth entity.AuthContext, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.UpdatePatientResponse, error) {
	args := m.Called(ctx, auth, id, req)
	res, _ := args.Get(0).(*dto.UpdatePatientResponse)
	return res, args.Error(1)
}

type mockHistoryUsecase struct{ mock.Mock }

func (m *mockHistoryUsecase) GetHistory(ctx context.Context, patientID uuid.UUID, query dto.HistoryQuery) (*dto.HistoryResponse, error) {
	args := m.Called(ctx, patientID, query)
	res, _ := args.Get(0).(*dto.HistoryResponse)
	return res, args.Error(1)
}

func (m *mockHistoryUsecase) DeleteConsultation(ctx context.Context, auth entity.AuthContext, patientID uuid.UUID, consultationID string) error {
	return m.Called(ctx, auth, patientID, consultationID).Error(0)
}

type mockRecentActivityUsecase struct{ mock.Mock }

func (m *mockRecentActivityUsecase) GetRecentActivity(ctx context.Context, doctorID string) ([]dto.RecentActivityResponse, error) {
	args := m.Called(ctx, doctorID)
	res, _ := args.Get(0).([]dto.RecentActivityResponse)
	return res, args.Error(1)
}

type mockSearchUsecase struct{ mock.Mock }

func (m *mockSearchUsecase) SearchPatients(ctx context.Context, auth entity.AuthContext, query string) ([]dto.PatientSearchResult, error) {
	args := m.Called(ctx, auth, query)
	res, _ := args.Get(0).([]dto.PatientSearchResult)
	return res, args.Error(1)
}

type mockAuthUsecase struct{ mock.Mock }

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dto.TokenResponse)
	return res, args.Error(1)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, auth entity.AuthContext, refreshToken string) error {
	return m.Called(ctx, auth, refreshToken).Error(0)
}

func (m *mockAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dto.TokenResponse)
	return res, args.Error(1)
}

func (m *mockAuthUsecase) GetCurrentDoctor(ctx context.Context, auth entity.AuthContext) (*dto.DoctorResponse, error) {
	args := m.Called(ctx, auth)
	res, _ := args.Get(0).(*dto.DoctorResponse)
	return res, args.Error(1)
}

type mockAuditLogUsecase struct{ mock.Mock }

func (m *mockAuditLogUsecase) GetMyAuditLogs(ctx context.Context, auth entity.AuthContext, params pagination.Params) ([]dto.AuditLogResponse, *pagination.Meta, error) {
	args := m.Called(ctx, auth, params)
	logs, _ := args.Get(0).([]dto.AuditLogResponse)
	meta, _ := args.Get(1).(*pagination.Meta)
	return logs, meta, args.Error(2)
}

type mockConsultationUsecase struct{ mock.Mock }

func (m *mockConsultationUsecase) CreateConsultation(ctx context.Context, auth entity.AuthContext, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error) {
	args := m.Called(ctx, auth, req)
	res, _ := args.Get(0).(*dto.ConsultationResponse)
	return res, args.Error(1)
}
