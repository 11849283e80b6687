package mocks

import (
	"github.com/philip928lin/pathnav/tree"
	"github.com/stretchr/testify/mock"
)

// MockFilesystem implements tree.Filesystem for testing across packages
type MockFilesystem struct {
	mock.Mock
}

func (m *MockFilesystem) ListDir(path string) ([]tree.DirEntry, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tree.DirEntry), args.Error(1)
}

func (m *MockFilesystem) MakeDir(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockFilesystem) RemoveFile(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockFilesystem) RemoveDirAll(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockFilesystem) PathExists(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}

var _ tree.Filesystem = (*MockFilesystem)(nil)

// MockProcess implements tree.Process for testing across packages
type MockProcess struct {
	mock.Mock
}

func (m *MockProcess) AddSearchPath(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockProcess) SetWorkingDir(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

var _ tree.Process = (*MockProcess)(nil)
