package v1beta1

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// parseCommaSeparatedValues splits comma-separated string values into arrays
// This handles cases where query parameters come as "value1,value2,value3"
// instead of repeated parameters "param=value1&param=value2&param=value3"
func parseCommaSeparatedValues(values []string) []string {
	if len(values) == 0 {
		return values
	}

	var result []string
	for _, v := range values {
		if strings.Contains(v, ",") {
			parts := strings.Split(v, ",")
			for _, part := range parts {
				trimmed := strings.TrimSpace(part)
				if trimmed != "" {
					result = append(result, trimmed)
				}
			}
		} else {
			if v != "" {
				result = append(result, v)
			}
		}
	}
	return result
}

// decodeQuery decodes query parameters into the mapstructure tagged fields of v.
// Keys listed in listKeys accept repeated and comma-separated values.
func decodeQuery(query url.Values, v interface{}, listKeys ...string) error {
	input := make(map[string]interface{}, len(query))
	for k, values := range query {
		if len(values) == 1 {
			input[k] = values[0]
		} else {
			input[k] = values
		}
	}
	for _, k := range listKeys {
		if values, ok := query[k]; ok {
			input[k] = parseCommaSeparatedValues(values)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           v,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("%w: %s", errInvalidQuery, err)
	}
	return nil
}
