package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
)

func TestDecodeArguments(t *testing.T) {
	type args struct {
		Title string `json:"title"`
	}

	tests := []struct {
		name      string
		arguments string
		want      string
		wantErr   bool
	}{
		{
			name:      "Should decode a native JSON object",
			arguments: `{"title":"Buy milk"}`,
			want:      "Buy milk",
		},
		{
			name:      "Should decode a JSON-encoded string",
			arguments: `"{\"title\":\"Buy milk\"}"`,
			want:      "Buy milk",
		},
		{
			name:      "Should treat absent arguments as empty",
			arguments: "",
			want:      "",
		},
		{
			name:      "Should reject a string that is not JSON",
			arguments: `"not json"`,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := model.ToolCallFunction{
				Name:      "createTodo",
				Arguments: json.RawMessage(tt.arguments),
			}

			var got args
			err := fn.DecodeArguments(&got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got.Title)
		})
	}
}
