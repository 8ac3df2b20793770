package errors

import "strconv"

// ERR is the code carried by every Error.
type ERR int32

const (
	ERR_UNKNOWN                   ERR = 0
	ERR_INVALID_ARGUMENT          ERR = 1
	ERR_NOT_FOUND                 ERR = 3
	ERR_PROCESSING                ERR = 4
	ERR_CONFIGURATION             ERR = 5
	ERR_ERROR                     ERR = 9
	ERR_CONFIGURATION_INTEGRITY   ERR = 20
	ERR_INVALID_NETWORK_SELECTION ERR = 21
)

var ERR_name = map[int32]string{
	0:  "UNKNOWN",
	1:  "INVALID_ARGUMENT",
	3:  "NOT_FOUND",
	4:  "PROCESSING",
	5:  "CONFIGURATION",
	9:  "ERROR",
	20: "CONFIGURATION_INTEGRITY",
	21: "INVALID_NETWORK_SELECTION",
}

var ERR_value = map[string]int32{
	"UNKNOWN":                   0,
	"INVALID_ARGUMENT":          1,
	"NOT_FOUND":                 3,
	"PROCESSING":                4,
	"CONFIGURATION":             5,
	"ERROR":                     9,
	"CONFIGURATION_INTEGRITY":   20,
	"INVALID_NETWORK_SELECTION": 21,
}

func (x ERR) String() string {
	if name, ok := ERR_name[int32(x)]; ok {
		return name
	}

	return strconv.Itoa(int(x))
}

func (x ERR) Enum() *ERR {
	p := new(ERR)
	*p = x

	return p
}
