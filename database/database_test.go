package database

import "testing"

func TestGormConfigTranslatesDriverErrors(t *testing.T) {
	if !gormConfig().TranslateError {
		t.Fatal("TranslateError must be enabled so unique-index violations surface as gorm.ErrDuplicatedKey")
	}
}
