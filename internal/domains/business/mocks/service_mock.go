// Code generated by MockGen. DO NOT EDIT.
// Source: ./service.go
//
// Generated by this command:
//
//	mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	multipart "mime/multipart"
	reflect "reflect"
	model "reservahub/internal/domains/business/model"
	dto "reservahub/internal/domains/business/model/dto"

	gomock "go.uber.org/mock/gomock"
)

// MockBusiness is a mock of Business interface.
type MockBusiness struct {
	ctrl     *gomock.Controller
	recorder *MockBusinessMockRecorder
	isgomock struct{}
}

// MockBusinessMockRecorder is the mock recorder for MockBusiness.
type MockBusinessMockRecorder struct {
	mock *MockBusiness
}

// NewMockBusiness creates a new mock instance.
func NewMockBusiness(ctrl *gomock.Controller) *MockBusiness {
	mock := &MockBusiness{ctrl: ctrl}
	mock.recorder = &MockBusinessMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBusiness) EXPECT() *MockBusinessMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockBusiness) Get(ctx context.Context, businessID string) (dto.SettingsResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, businessID)
	ret0, _ := ret[0].(dto.SettingsResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockBusinessMockRecorder) Get(ctx, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockBusiness)(nil).Get), ctx, businessID)
}

// GetOrInitialize mocks base method.
func (m *MockBusiness) GetOrInitialize(ctx context.Context, businessID string) (model.Settings, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOrInitialize", ctx, businessID)
	ret0, _ := ret[0].(model.Settings)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOrInitialize indicates an expected call of GetOrInitialize.
func (mr *MockBusinessMockRecorder) GetOrInitialize(ctx, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOrInitialize", reflect.TypeOf((*MockBusiness)(nil).GetOrInitialize), ctx, businessID)
}

// Update mocks base method.
func (m *MockBusiness) Update(ctx context.Context, req dto.UpdateSettingsRequest, businessID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, req, businessID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockBusinessMockRecorder) Update(ctx, req, businessID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockBusiness)(nil).Update), ctx, req, businessID)
}

// UploadPhoto mocks base method.
func (m *MockBusiness) UploadPhoto(ctx context.Context, businessID string, file multipart.File, header *multipart.FileHeader) (dto.UploadPhotoResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UploadPhoto", ctx, businessID, file, header)
	ret0, _ := ret[0].(dto.UploadPhotoResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UploadPhoto indicates an expected call of UploadPhoto.
func (mr *MockBusinessMockRecorder) UploadPhoto(ctx, businessID, file, header any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UploadPhoto", reflect.TypeOf((*MockBusiness)(nil).UploadPhoto), ctx, businessID, file, header)
}
