package model

import "testing"

func TestDownloadStatus_Message(t *testing.T) {
	tests := []struct {
		status   DownloadStatus
		expected string
	}{
		{StatusIdle, ""},
		{StatusProcessing, "Processing..."},
		{StatusCompleted, "Download completed!"},
		{StatusFailed, "Download failed. Please try again."},
	}

	for _, test := range tests {
		result := test.status.Message()
		if result != test.expected {
			t.Errorf("DownloadStatus(%s).Message() = %q, expected %q", test.status, result, test.expected)
		}
	}
}

func TestDownloadStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   DownloadStatus
		expected bool
	}{
		{StatusIdle, false},
		{StatusProcessing, true},
		{StatusCompleted, false},
		{StatusFailed, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("DownloadStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestDownloadStatus_IsFailure(t *testing.T) {
	if !StatusFailed.IsFailure() {
		t.Error("StatusFailed should be a failure")
	}
	for _, status := range []DownloadStatus{StatusIdle, StatusProcessing, StatusCompleted} {
		if status.IsFailure() {
			t.Errorf("DownloadStatus(%s).IsFailure() = true, expected false", status)
		}
	}
}

func TestDisplayMode_ToggleIsInvolution(t *testing.T) {
	for _, mode := range []DisplayMode{ModeLight, ModeDark} {
		if mode.Toggle() == mode {
			t.Errorf("Toggle() of %s should change the mode", mode)
		}
		if mode.Toggle().Toggle() != mode {
			t.Errorf("Toggle() twice of %s = %s", mode, mode.Toggle().Toggle())
		}
	}

	if ModeLight.IsDark() || !ModeDark.IsDark() {
		t.Error("IsDark() mismatch")
	}
}
