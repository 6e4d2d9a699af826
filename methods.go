package systab

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

func camelToSnakeCase(name string) string {
	var words []string
	last := 0
	for i, c := range name {
		if unicode.IsUpper(c) {
			if i > 0 {
				words = append(words, name[last:i])
			}
			last = i
		}
	}
	words = append(words, name[last:])
	return strings.ToLower(strings.Join(words, "_"))
}

// RegisterMethods discovers the exported methods of recv and registers each
// one whose snake_case name appears in nums, under that number. The "Literal"
// prefix lets a method carry a name Go cannot export directly: Literal_llseek
// registers as "_llseek". Methods missing from nums are skipped.
func (t *Table) RegisterMethods(recv interface{}, nums map[string]uint16) error {
	instance := reflect.ValueOf(recv)
	typ := instance.Type()
	for i := 0; i < typ.NumMethod(); i++ {
		method := typ.Method(i)
		name := method.Name
		if strings.HasPrefix(name, "Literal") {
			name = strings.Replace(name, "Literal", "", 1)
		} else if r, size := utf8.DecodeRuneInString(name); size <= 0 || !unicode.IsUpper(r) {
			// skip private or broken unicode methods
			continue
		}
		name = camelToSnakeCase(name)
		num, ok := nums[name]
		if !ok {
			continue
		}
		if err := t.register(num, name, instance.Method(i)); err != nil {
			return err
		}
	}
	return nil
}
