package client

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	SHORT_UUID_LEN = 8
)

// RunUuid identifies one execution of the report generator.
type RunUuid struct {
	Full  string
	Short string
}

func NewRunUuid() RunUuid {
	newUuid, _ := uuid.NewRandom()
	newUuidStr := newUuid.String()

	return RunUuid{
		Full:  newUuidStr,
		Short: shortenUuid(newUuidStr),
	}
}

// StreamId tags the reports of one run of one input file, so two runs over
// the same file publish distinguishable streams.
func StreamId(fileName string, run RunUuid) string {
	return fmt.Sprintf("%s-%s", fileName, run.Short)
}

func shortenUuid(longUuid string) string {
	noDashUuid := strings.ReplaceAll(longUuid, "-", "")

	if SHORT_UUID_LEN > len(noDashUuid) {
		return noDashUuid
	}

	return noDashUuid[:SHORT_UUID_LEN]
}
