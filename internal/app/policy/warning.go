package policy

import "fmt"

const warningPrefix = "[media type validation]"

func FormatWarning(mediaType, description, parsedBody string) string {
	return fmt.Sprintf("%s The data being sent as %s is invalid:\n%s\nParsed body: %s\n",
		warningPrefix, mediaType, description, parsedBody)
}
