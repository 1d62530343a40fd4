package model

import (
	"reflect"
	"strings"
	"testing"
)

// Deleting a course must take its whole subtree with it. The services issue a
// single parent delete and rely on these FK constraints for the children, so
// losing one of the tags would silently orphan rows.
func TestChildAssociationsCascadeOnDelete(t *testing.T) {
	cases := []struct {
		owner reflect.Type
		field string
	}{
		{reflect.TypeOf(Course{}), "Themes"},
		{reflect.TypeOf(Theme{}), "Homeworks"},
		{reflect.TypeOf(Theme{}), "Files"},
		{reflect.TypeOf(Homework{}), "Submissions"},
		{reflect.TypeOf(Submission{}), "Files"},
	}
	for _, tc := range cases {
		field, ok := tc.owner.FieldByName(tc.field)
		if !ok {
			t.Fatalf("%s has no field %s", tc.owner.Name(), tc.field)
		}
		if !strings.Contains(field.Tag.Get("gorm"), "OnDelete:CASCADE") {
			t.Errorf("%s.%s is missing the OnDelete:CASCADE constraint", tc.owner.Name(), tc.field)
		}
	}
}
