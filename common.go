package iso8601

/*
common.go contains elements, types and functions used by several
components throughout this package.
*/

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"unsafe"
)

/*
official import aliases.
*/
var (
	mkerr   func(string) error            = errors.New
	itoa    func(int) string              = strconv.Itoa
	atoi    func(string) (int, error)     = strconv.Atoi
	fmtInt  func(int64, int) string       = strconv.FormatInt
	lc      func(string) string           = strings.ToLower
	uc      func(string) string           = strings.ToUpper
	split   func(string, string) []string = strings.Split
	join    func([]string, string) string = strings.Join
	hasPfx  func(string, string) bool     = strings.HasPrefix
	trimPfx func(string, string) string   = strings.TrimPrefix
	trimS   func(string) string           = strings.TrimSpace
	trim    func(string, string) string   = strings.Trim
	streqf  func(string, string) bool     = strings.EqualFold
	idx     func(string, string) int      = strings.Index
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func bool2str(b bool) (s string) {
	if s = `false`; b {
		s = `true`
	}
	return
}

// unsafeString views b as a string without copying. b must not be
// modified while the result is in use.
func unsafeString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

func typeName(x any) (s string) {
	s = `<nil>`
	if x != nil {
		s = reflect.TypeOf(x).String()
	}
	return
}
