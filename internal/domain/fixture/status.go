package fixture

import (
	"strconv"
	"strings"
)

// Status is the provider's short status code.
type Status string

const (
	StatusTBD            Status = "TBD"
	StatusNotStarted     Status = "NS"
	StatusFirstHalf      Status = "1H"
	StatusHalfTime       Status = "HT"
	StatusSecondHalf     Status = "2H"
	StatusExtraTime      Status = "ET"
	StatusBreakTime      Status = "BT"
	StatusPenaltyRunning Status = "P"
	StatusSuspended      Status = "SUSP"
	StatusInterrupted    Status = "INT"
	StatusLive           Status = "LIVE"
	StatusFullTime       Status = "FT"
	StatusAfterExtraTime Status = "AET"
	StatusPenalties      Status = "PEN"
	StatusPostponed      Status = "PST"
	StatusCancelled      Status = "CANC"
	StatusAbandoned      Status = "ABD"
	StatusTechnicalLoss  Status = "AWD"
	StatusWalkover       Status = "WO"
)

var (
	liveStatuses = map[Status]struct{}{
		StatusFirstHalf: {}, StatusSecondHalf: {}, StatusHalfTime: {}, StatusExtraTime: {},
		StatusBreakTime: {}, StatusPenaltyRunning: {}, StatusSuspended: {}, StatusInterrupted: {},
		StatusLive: {},
	}
	finishedStatuses = map[Status]struct{}{
		StatusFullTime: {}, StatusAfterExtraTime: {}, StatusPenalties: {},
	}
	scheduledStatuses = map[Status]struct{}{
		StatusTBD: {}, StatusNotStarted: {},
	}
)

var statusText = map[Status]string{
	StatusTBD:            "미정",
	StatusNotStarted:     "예정",
	StatusFirstHalf:      "전반전",
	StatusHalfTime:       "하프타임",
	StatusSecondHalf:     "후반전",
	StatusExtraTime:      "연장전",
	StatusBreakTime:      "휴식",
	StatusPenaltyRunning: "승부차기",
	StatusSuspended:      "중단",
	StatusInterrupted:    "중단",
	StatusFullTime:       "종료",
	StatusAfterExtraTime: "연장 종료",
	StatusPenalties:      "승부차기 종료",
	StatusPostponed:      "연기",
	StatusCancelled:      "취소",
	StatusAbandoned:      "중단",
	StatusTechnicalLoss:  "몰수",
	StatusWalkover:       "부전승",
}

func NormalizeStatus(value string) Status {
	return Status(strings.ToUpper(strings.TrimSpace(value)))
}

func (s Status) IsLive() bool {
	_, ok := liveStatuses[s]
	return ok
}

// IsFinished reports the terminal statuses with a decided result.
func (s Status) IsFinished() bool {
	_, ok := finishedStatuses[s]
	return ok
}

func (s Status) IsScheduled() bool {
	_, ok := scheduledStatuses[s]
	return ok
}

// Text is the localized display text, falling back to the raw code.
func (s Status) Text() string {
	if text, ok := statusText[s]; ok {
		return text
	}
	return string(s)
}

// MatchClock renders elapsed minutes for running fixtures and the status code
// for break and terminal states.
func MatchClock(elapsed *int, status Status) string {
	switch status {
	case StatusHalfTime, StatusFullTime, StatusAfterExtraTime, StatusPenalties:
		return string(status)
	case StatusNotStarted:
		return "-"
	}
	if elapsed == nil {
		return "-"
	}
	return strconv.Itoa(*elapsed) + "'"
}
