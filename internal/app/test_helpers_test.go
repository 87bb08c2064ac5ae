package app

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/canonfmt/canonfmt/internal/formatter"
)

type MockManager struct {
	mock.Mock
	registry *formatter.Registry
}

func (m *MockManager) Registry() *formatter.Registry {
	return m.registry
}

func (m *MockManager) FormatTree(ctx context.Context, roots []string, output string, useColour bool) error {
	args := m.Called(ctx, roots, output, useColour)
	return args.Error(0)
}

func (m *MockManager) CheckTree(ctx context.Context, roots []string, output string,
	useColour bool, strict bool,
) error {
	args := m.Called(ctx, roots, output, useColour, strict)
	return args.Error(0)
}

func (m *MockManager) WatchCheck(ctx context.Context, roots []string, output string,
	useColour bool, readyChan chan<- struct{},
) error {
	args := m.Called(ctx, roots, output, useColour, readyChan)
	return args.Error(0)
}
