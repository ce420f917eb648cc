package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/mocks"
	"github.com/scaleway-community/terraform-provider-scwserverless/scwserverless/scaleway"
)

func TestWaitForState(t *testing.T) {
	testCases := []struct {
		name         string
		stableStates []string
		timeout      time.Duration
		mockSetup    func(m *mocks.MockStateReader)
		wantState    string
		wantErr      string
	}{
		{
			name:         "already stable",
			stableStates: []string{"ready"},
			timeout:      5 * time.Minute,
			mockSetup: func(m *mocks.MockStateReader) {
				m.EXPECT().ReadState(gomock.Any()).Return("ready", nil)
			},
			wantState: "ready",
		},
		{
			name:         "pending then stable",
			stableStates: []string{"ready", "created"},
			timeout:      5 * time.Minute,
			mockSetup: func(m *mocks.MockStateReader) {
				gomock.InOrder(
					m.EXPECT().ReadState(gomock.Any()).Return("pending", nil),
					m.EXPECT().ReadState(gomock.Any()).Return("deploying", nil),
					m.EXPECT().ReadState(gomock.Any()).Return("created", nil),
				)
			},
			wantState: "created",
		},
		{
			name:         "error status fails immediately",
			stableStates: []string{"ready"},
			timeout:      5 * time.Minute,
			mockSetup: func(m *mocks.MockStateReader) {
				gomock.InOrder(
					m.EXPECT().ReadState(gomock.Any()).Return("pending", nil),
					m.EXPECT().ReadState(gomock.Any()).Return("error", nil),
				)
			},
			wantState: "error",
			wantErr:   `resource reached status "error"`,
		},
		{
			name:         "not found counts as absent",
			stableStates: []string{StatusAbsent},
			timeout:      5 * time.Minute,
			mockSetup: func(m *mocks.MockStateReader) {
				gomock.InOrder(
					m.EXPECT().ReadState(gomock.Any()).Return("deleting", nil),
					m.EXPECT().ReadState(gomock.Any()).Return("", &scaleway.APIError{StatusCode: 404, Message: "no such resource"}),
				)
			},
			wantState: StatusAbsent,
		},
		{
			name:         "read failure is not retried",
			stableStates: []string{"ready"},
			timeout:      5 * time.Minute,
			mockSetup: func(m *mocks.MockStateReader) {
				m.EXPECT().ReadState(gomock.Any()).Return("", errors.New("connection reset"))
			},
			wantErr: "connection reset",
		},
		{
			name:         "times out while pending",
			stableStates: []string{"ready"},
			timeout:      50 * time.Millisecond,
			mockSetup: func(m *mocks.MockStateReader) {
				m.EXPECT().ReadState(gomock.Any()).Return("pending", nil).AnyTimes()
			},
			wantState: "pending",
			wantErr:   "timed out after 50ms",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := mocks.NewMockStateReader(ctrl)
			if tc.mockSetup != nil {
				tc.mockSetup(reader)
			}

			state, err := WaitForState(context.Background(), reader, tc.stableStates, tc.timeout, time.Millisecond)
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got: %v", err)
				}
			} else {
				var timeoutErr *TimeoutError
				switch {
				case err == nil:
					t.Errorf("Expected error '%s', got nil", tc.wantErr)
				case errors.As(err, &timeoutErr):
					if err.Error()[:len(tc.wantErr)] != tc.wantErr {
						t.Errorf("Expected error '%s', got: %v", tc.wantErr, err)
					}
				case err.Error() != tc.wantErr:
					t.Errorf("Expected error '%s', got: %v", tc.wantErr, err)
				}
			}
			if state != tc.wantState {
				t.Errorf("Expected last observed state %q, got %q", tc.wantState, state)
			}
		})
	}
}

func TestWaitForStateCancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := mocks.NewMockStateReader(ctrl)
	reader.EXPECT().ReadState(gomock.Any()).Return("pending", nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := WaitForState(ctx, reader, []string{"ready"}, time.Minute, time.Millisecond); err == nil {
		t.Error("Expected an error waiting with a cancelled context")
	}
}
