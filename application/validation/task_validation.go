package validation

import (
	"strings"

	"task-manager-api/pkg/utils"
)

const (
	MsgTitleRequired      = "Title is required"
	MsgTitleNotString     = "Title must be a string"
	MsgTitleTooLong       = "Title must not exceed 255 characters"
	MsgDescriptionNotText = "Description must be a string"
	MsgDueDateRequired    = "Due date is required"
	MsgDueDateInvalid     = "Invalid due date format, expected a valid date-time"
	MsgStatusInvalid      = `Status must be "done" or "not_done"`
	MsgPriorityInvalid    = `Priority must be "low", "medium" or "high"`
	MsgCategoryNotText    = "Category must be a string"
)

const (
	requiredRule    = "required"
	titleLengthRule = "max=255"
	statusRule      = "oneof=done not_done"
	priorityRule    = "oneof=low medium high"
)

// ValidateTask checks a decoded JSON object and returns field -> message for
// every invalid field. An empty map means the payload is valid. On update
// only present fields are checked; a JSON null counts as absent.
func ValidateTask(payload map[string]any, isUpdate bool) map[string]string {
	errs := make(map[string]string)

	if v, ok := present(payload, "title"); ok {
		if msg := checkTitle(v); msg != "" {
			errs["title"] = msg
		}
	} else if !isUpdate {
		errs["title"] = MsgTitleRequired
	}

	if v, ok := present(payload, "description"); ok {
		if _, isStr := v.(string); !isStr {
			errs["description"] = MsgDescriptionNotText
		}
	}

	if v, ok := present(payload, "due_date"); ok {
		s, isStr := v.(string)
		if !isStr {
			errs["due_date"] = MsgDueDateInvalid
		} else if _, err := ParseDateTime(s); err != nil {
			errs["due_date"] = MsgDueDateInvalid
		}
	} else if !isUpdate {
		errs["due_date"] = MsgDueDateRequired
	}

	if v, ok := present(payload, "status"); ok {
		if !isEnumValue(v, statusRule) {
			errs["status"] = MsgStatusInvalid
		}
	}

	if v, ok := present(payload, "priority"); ok {
		if !isEnumValue(v, priorityRule) {
			errs["priority"] = MsgPriorityInvalid
		}
	}

	if v, ok := present(payload, "category"); ok {
		if _, isStr := v.(string); !isStr {
			errs["category"] = MsgCategoryNotText
		}
	}

	return errs
}

func present(payload map[string]any, key string) (any, bool) {
	v, ok := payload[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func checkTitle(v any) string {
	s, ok := v.(string)
	if !ok {
		return MsgTitleNotString
	}
	if !utils.CheckVar(strings.TrimSpace(s), requiredRule) {
		return MsgTitleRequired
	}
	// max counts runes, not bytes
	if !utils.CheckVar(s, titleLengthRule) {
		return MsgTitleTooLong
	}
	return ""
}

// isEnumValue is strict: the value must be a string spelled exactly as one of
// the allowed members.
func isEnumValue(v any, rule string) bool {
	s, ok := v.(string)
	if !ok || s == "" {
		return false
	}
	return utils.CheckVar(s, rule)
}
