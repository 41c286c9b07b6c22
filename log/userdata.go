package log

import (
	"log/slog"
	"strings"

	"golang.org/x/exp/slices"
)

// UserData is a value which should be treated as user data, and therefore tagged as such in the logs so that it may
// be redacted before logs are shared.
//
//	log.Infof("Opened table %s", log.UserData(name))
type UserData string

// String implements fmt.Stringer; it's only invoked when the statement is enabled.
func (u UserData) String() string {
	return "<ud>" + string(u) + "</ud>"
}

// LogValue implements slog.LogValuer.
func (u UserData) LogValue() slog.Value {
	return slog.StringValue(u.String())
}

// UserDataAttr returns an slog.Attr for a string value that should be treated as user data.
func UserDataAttr(key, value string) slog.Attr {
	return slog.Attr{Key: key, Value: UserData(value).LogValue()}
}

// UserTagArguments returns a new slice with the values for the flags given in flagsToTag surrounded by the <ud></ud>
// tags.
func UserTagArguments(args, flagsToTag []string) []string {
	ret := slices.Clone(args)
	if ret == nil {
		ret = []string{}
	}

	for i := 0; i < len(ret)-1; i++ {
		if flagMatches(ret[i], flagsToTag) {
			i++

			ret[i] = UserData(ret[i]).String()
		}
	}

	return ret
}

// MaskArguments returns a new slice with the values of the flags given in flagsToMask replaced by a fixed number of *.
func MaskArguments(args, flagsToMask []string) []string {
	ret := slices.Clone(args)
	if ret == nil {
		ret = []string{}
	}

	for i := 0; i < len(ret)-1; i++ {
		// Only mask when the flag is followed by a value.
		if flagMatches(ret[i], flagsToMask) && !strings.HasPrefix(ret[i+1], "-") {
			i++

			ret[i] = "*****" // Fixed length so the length of the secret isn't revealed.
		}
	}

	return ret
}

// MaskAndUserTagArguments calls both UserTagArguments and MaskArguments on the given data and joins the result with
// spaces, ready for logging.
func MaskAndUserTagArguments(args, flagsToTag, flagsToMask []string) string {
	return strings.TrimSpace(strings.Join(MaskArguments(UserTagArguments(args, flagsToTag), flagsToMask), " "))
}

// flagMatches reports whether flag is one of referenceFlags. Long flags must match exactly, short flags match by
// prefix.
func flagMatches(flag string, referenceFlags []string) bool {
	return slices.ContainsFunc(referenceFlags, func(reference string) bool {
		if strings.HasPrefix(reference, "--") {
			return flag == reference
		}

		return strings.HasPrefix(flag, reference)
	})
}
