package config

import (
	"testing"
)

func TestSubstituteEnvVars_Simple(t *testing.T) {
	t.Setenv("TEST_VAR_SIMPLE", "hello")

	content, missing := substituteEnvVars("value = ${TEST_VAR_SIMPLE}")
	if content != "value = hello" {
		t.Errorf("expected 'value = hello', got %q", content)
	}
	if len(missing) != 0 {
		t.Errorf("expected no missing vars, got %v", missing)
	}
}

func TestSubstituteEnvVars_SetButEmpty(t *testing.T) {
	t.Setenv("TEST_VAR_EMPTY", "")

	content, missing := substituteEnvVars("value = '${TEST_VAR_EMPTY}'")
	if content != "value = ''" {
		t.Errorf("expected empty substitution, got %q", content)
	}
	if len(missing) != 0 {
		t.Errorf("expected no missing vars, got %v", missing)
	}
}

func TestSubstituteEnvVars_Missing(t *testing.T) {
	content, missing := substituteEnvVars("value = ${ONDEMAND_TEST_NONEXISTENT_VAR_12345}")
	if content != "value = ${ONDEMAND_TEST_NONEXISTENT_VAR_12345}" {
		t.Errorf("expected unchanged, got %q", content)
	}
	if len(missing) != 1 || missing[0] != "ONDEMAND_TEST_NONEXISTENT_VAR_12345" {
		t.Errorf("expected [ONDEMAND_TEST_NONEXISTENT_VAR_12345], got %v", missing)
	}
}

func TestSubstituteEnvVars_Default(t *testing.T) {
	t.Setenv("UNSET_VAR_DEFAULT", "")

	content, missing := substituteEnvVars("value = ${UNSET_VAR_DEFAULT:-default_value}")
	if content != "value = default_value" {
		t.Errorf("expected 'value = default_value', got %q", content)
	}
	if len(missing) != 0 {
		t.Errorf("expected no missing vars with default, got %v", missing)
	}
}

func TestSubstituteEnvVars_DefaultOverriddenByEnv(t *testing.T) {
	t.Setenv("SET_VAR_OVERRIDE", "from_env")

	content, _ := substituteEnvVars("value = ${SET_VAR_OVERRIDE:-default}")
	if content != "value = from_env" {
		t.Errorf("expected 'value = from_env', got %q", content)
	}
}

func TestSubstituteEnvVars_RequiredError(t *testing.T) {
	t.Setenv("REQUIRED_VAR_TEST", "")

	content, missing := substituteEnvVars("value = ${REQUIRED_VAR_TEST:?database path is required}")
	if content != "value = ${REQUIRED_VAR_TEST:?database path is required}" {
		t.Errorf("expected unchanged, got %q", content)
	}
	if len(missing) != 1 || missing[0] != "REQUIRED_VAR_TEST: database path is required" {
		t.Errorf("expected error message, got %v", missing)
	}
}

func TestSubstituteEnvVars_LeavesPrintfVerbs(t *testing.T) {
	content, missing := substituteEnvVars(`player_url = "https://x.test/%d?context=web"`)
	if content != `player_url = "https://x.test/%d?context=web"` {
		t.Errorf("expected unchanged, got %q", content)
	}
	if len(missing) != 0 {
		t.Errorf("expected no missing vars, got %v", missing)
	}
}

func TestSubstituteEnvVars_SkipsComments(t *testing.T) {
	input := "# example: ${ONDEMAND_TEST_COMMENT_ONLY}\n  # ${ONDEMAND_TEST_COMMENT_ONLY:?never}\nvalue = 1\n"

	content, missing := substituteEnvVars(input)
	if content != input {
		t.Errorf("expected comments unchanged, got %q", content)
	}
	if len(missing) != 0 {
		t.Errorf("expected no missing vars from comments, got %v", missing)
	}
}
