package utils

import "errors"

// ErrorInvalidMasterData marks fatal problems in the embedded catalogue or
// department registry; callers wrap it with the offending entry.
var ErrorInvalidMasterData = errors.New("invalid master data")
