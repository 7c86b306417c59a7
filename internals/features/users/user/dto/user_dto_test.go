package dto

import (
	"encoding/json"
	"testing"

	"gorm.io/gorm/clause"
)

func TestPatchMeRequestTriState(t *testing.T) {
	var body PatchMeRequest
	payload := []byte(`{"user_full_name":"  Asha Verma ","user_exam_year":null,"user_medium":"HINDI"}`)
	if err := json.Unmarshal(payload, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !body.UserFullName.ShouldUpdate() || body.UserFullName.IsNull() {
		t.Fatalf("user_full_name should be a value update")
	}
	if !body.UserExamYear.ShouldUpdate() || !body.UserExamYear.IsNull() {
		t.Fatalf("user_exam_year should be a null update")
	}
	if body.UserAvatarURL.ShouldUpdate() {
		t.Fatalf("user_avatar_url was absent; must not update")
	}

	u := body.ToUpdates()

	if got := u["user_full_name"]; got != "Asha Verma" {
		t.Fatalf("user_full_name = %v, want trimmed value", got)
	}
	if expr, ok := u["user_exam_year"].(clause.Expr); !ok || expr.SQL != "NULL" {
		t.Fatalf("user_exam_year = %#v, want NULL expr", u["user_exam_year"])
	}
	if _, ok := u["user_avatar_url"]; ok {
		t.Fatalf("absent field leaked into updates")
	}
	if got := u["user_medium"]; got == nil {
		t.Fatalf("user_medium missing from updates")
	}
}

func TestPatchMeRequestEmptyBody(t *testing.T) {
	var body PatchMeRequest
	if err := json.Unmarshal([]byte(`{}`), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if u := body.ToUpdates(); len(u) != 0 {
		t.Fatalf("empty payload produced %d updates", len(u))
	}
}

func TestPatchMeRequestInvalidMediumDropped(t *testing.T) {
	var body PatchMeRequest
	if err := json.Unmarshal([]byte(`{"user_medium":"klingon"}`), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := body.ToUpdates()["user_medium"]; ok {
		t.Fatalf("invalid medium must not reach the update map")
	}
}
