// Package ordersvc - test bảng chuyển trạng thái đơn hàng.
package ordersvc

import "testing"

func TestCanTransition_LegalSteps(t *testing.T) {
	legal := [][2]string{
		{StatusWaiting, StatusAccepted},
		{StatusWaiting, StatusCancelled},
		{StatusAccepted, StatusPreparing},
		{StatusAccepted, StatusCancelled},
		{StatusPreparing, StatusReady},
		{StatusReady, StatusDelivered},
	}
	for _, step := range legal {
		if !CanTransition(step[0], step[1]) {
			t.Errorf("chuyển %q -> %q phải hợp lệ", step[0], step[1])
		}
	}
}

func TestCanTransition_IllegalSteps(t *testing.T) {
	illegal := [][2]string{
		{StatusWaiting, StatusPreparing},
		{StatusWaiting, StatusReady},
		{StatusWaiting, StatusDelivered},
		{StatusAccepted, StatusReady},
		{StatusAccepted, StatusDelivered},
		{StatusPreparing, StatusCancelled},
		{StatusPreparing, StatusDelivered},
		{StatusReady, StatusCancelled},
		{StatusReady, StatusAccepted},
		{StatusDelivered, StatusWaiting},
		{StatusCancelled, StatusWaiting},
	}
	for _, step := range illegal {
		if CanTransition(step[0], step[1]) {
			t.Errorf("chuyển %q -> %q phải bị từ chối", step[0], step[1])
		}
	}
}

func TestCanTransition_SelfTransitionIdempotent(t *testing.T) {
	all := []string{StatusWaiting, StatusAccepted, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled}
	for _, s := range all {
		if !CanTransition(s, s) {
			t.Errorf("chuyển %q -> %q (giữ nguyên) phải hợp lệ", s, s)
		}
	}
}

func TestCanTransition_TerminalStates(t *testing.T) {
	all := []string{StatusWaiting, StatusAccepted, StatusPreparing, StatusReady}
	for _, terminal := range []string{StatusDelivered, StatusCancelled} {
		for _, to := range all {
			if CanTransition(terminal, to) {
				t.Errorf("trạng thái terminal %q không được chuyển sang %q", terminal, to)
			}
		}
	}
}

func TestCanTransition_UnknownStatus(t *testing.T) {
	if CanTransition("shipping", StatusDelivered) {
		t.Error("trạng thái không thuộc enum phải bị từ chối")
	}
	if CanTransition(StatusWaiting, "done") {
		t.Error("trạng thái đích không thuộc enum phải bị từ chối")
	}
	if IsValidStatus("") {
		t.Error("chuỗi rỗng không phải trạng thái hợp lệ")
	}
}
