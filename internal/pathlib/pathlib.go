package pathlib

// Ext returns the extension of the last element of a slash-separated path: the
// suffix starting at the final dot, dot included. Trailing slashes are ignored.
// A dot leading the element (as in .htaccess) doesn't start an extension, neither
// do the special elements "." and "..". Empty string is returned if there's none.
func Ext(path string) string {
	var (
		startDot  = -1
		startPart = 0
		end       = -1
		// 0: nothing precedes the last dot, 1: only dots do, -1: anything else
		preDotState  = 0
		matchedSlash = true
	)

	for i := len(path) - 1; i >= 0; i-- {
		char := path[i]
		if char == '/' {
			if !matchedSlash {
				startPart = i + 1
				break
			}

			continue
		}

		if end == -1 {
			matchedSlash = false
			end = i + 1
		}

		switch {
		case char == '.':
			if startDot == -1 {
				startDot = i
			} else if preDotState != 1 {
				preDotState = 1
			}
		case startDot != -1:
			preDotState = -1
		}
	}

	if startDot == -1 || end == -1 || preDotState == 0 ||
		(preDotState == 1 && startDot == end-1 && startDot == startPart+1) {
		return ""
	}

	return path[startDot:end]
}
