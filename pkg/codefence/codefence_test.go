package codefence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"code-assistant/pkg/codefence"
)

func TestStrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "removes fence with language tag",
			in:   "```python\ndef f():\n    return 1\n```",
			want: "def f():\n    return 1",
		},
		{
			name: "trims plain text",
			in:   "  hello world  ",
			want: "hello world",
		},
		{
			name: "preserves blank lines and indentation inside the block",
			in:   "```\nline1\n\n    line2\n```",
			want: "line1\n\n    line2",
		},
		{
			name: "empty string",
			in:   "",
			want: "",
		},
		{
			name: "whitespace only",
			in:   " \n\t ",
			want: "",
		},
		{
			name: "fence in the middle of prose",
			in:   "Here:\n```go\nfmt.Println(1)\n```\nDone",
			want: "Here:\nfmt.Println(1)\nDone",
		},
		{
			name: "unterminated block",
			in:   "```js\nconsole.log(1)",
			want: "console.log(1)",
		},
		{
			name: "two consecutive blocks",
			in:   "```go\na\n```\n\n```go\nb\n```",
			want: "a\n\nb",
		},
		{
			name: "uppercase language tag",
			in:   "```Python\nx = 1\n```",
			want: "x = 1",
		},
		{
			name: "crlf line endings",
			in:   "```go\r\nx := 1\r\n```",
			want: "x := 1",
		},
		{
			name: "closing fence with indentation before it",
			in:   "```\nif x:\n    y()\n    ```",
			want: "if x:\n    y()",
		},
		{
			name: "closing fence on the same line as code",
			in:   "```\nprint(1)```",
			want: "print(1)",
		},
		{
			name: "inline fences",
			in:   "use ```x``` here",
			want: "use  here",
		},
		{
			name: "tag after a same-line fence is dropped",
			in:   "```\na  ```b",
			want: "a",
		},
		{
			name: "back to back blocks with tags",
			in:   "```go\na := 1\n```python\nprint(1)\n```",
			want: "a := 1\nprint(1)",
		},
		{
			name: "trailing tag after the last fence",
			in:   "```\ncode\n```js",
			want: "code",
		},
		{
			name: "text after the closing fence",
			in:   "```\nfoo\n```\nbar",
			want: "foo\nbar",
		},
		{
			name: "four backticks leave one",
			in:   "````",
			want: "`",
		},
		{
			name: "fence rebuilt from leftovers is stripped too",
			in:   "```\n``\n````",
			want: "",
		},
		{
			name: "no fences keeps inner whitespace",
			in:   "\n\nfor i in range(3):\n\tprint(i)\n\n",
			want: "for i in range(3):\n\tprint(i)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, codefence.Strip(tt.in))
		})
	}
}

func TestStrip_ReplyFromModel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "print('hi')", codefence.Strip("```\nprint('hi')\n```"))
}

func TestStrip_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain",
		"  padded  ",
		"```python\ndef f():\n    return 1\n```",
		"```\nline1\n\n    line2\n```",
		"`````",
		"``````",
		"```\n``\n````",
		"a``\n```py\n`b",
		"```go\n```\n```",
		"x\n  \n```",
		"```\r\n\r\n```\r\n",
		"I specialize in programming queries only.",
		"```go\na := 1\n```python\nprint(1)\n```",
		"```\ncode\n```js",
	}

	for _, in := range inputs {
		once := codefence.Strip(in)
		assert.Equal(t, once, codefence.Strip(once), "input %q", in)
		assert.NotContains(t, once, codefence.Fence, "input %q", in)
	}
}

func FuzzStrip(f *testing.F) {
	f.Add("```python\ndef f():\n    return 1\n```")
	f.Add("```\nline1\n\n    line2\n```")
	f.Add("  hello world  ")
	f.Add("````\n`")

	f.Fuzz(func(t *testing.T, in string) {
		once := codefence.Strip(in)
		if twice := codefence.Strip(once); twice != once {
			t.Fatalf("not idempotent for %q: %q != %q", in, twice, once)
		}
	})
}
