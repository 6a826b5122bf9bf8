package recorder

import "testing"

const grabWarning = "[x11grab @ 0x5614a3b2c1d0] Thread message queue blocking; " +
	"consider raising the thread_queue_size option (current value: 8)"

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		exitCode    int
		interrupted bool
		stderr      string
		want        Outcome
	}{
		{
			name:     "clean exit",
			exitCode: 0,
			want:     OutcomeSuccess,
		},
		{
			name:     "clean exit with stderr noise",
			exitCode: 0,
			stderr:   "frame= 100 fps=15\n",
			want:     OutcomeSuccess,
		},
		{
			name:        "interrupted with sigint code",
			exitCode:    255,
			interrupted: true,
			want:        OutcomeCancelled,
		},
		{
			name:     "sigint code without interrupt is a failure",
			exitCode: 255,
			stderr:   "Connection refused\n",
			want:     OutcomeFailed,
		},
		{
			name:        "interrupted with unexpected code",
			exitCode:    1,
			interrupted: true,
			stderr:      "something broke\n",
			want:        OutcomeFailed,
		},
		{
			name:     "benign grab warning",
			exitCode: 1,
			stderr:   grabWarning + "\n",
			want:     OutcomeSuccess,
		},
		{
			name:     "benign warning without trailing newline",
			exitCode: 1,
			stderr:   grabWarning,
			want:     OutcomeSuccess,
		},
		{
			name:     "benign warning plus another line",
			exitCode: 1,
			stderr:   grabWarning + "\nCannot open display\n",
			want:     OutcomeFailed,
		},
		{
			name:     "different single-line error",
			exitCode: 1,
			stderr:   "Cannot open display localhost:0\n",
			want:     OutcomeFailed,
		},
		{
			name:     "empty stderr failure",
			exitCode: 1,
			want:     OutcomeFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.exitCode, tt.interrupted, tt.stderr)
			if got != tt.want {
				t.Errorf("Classify(%d, %v, %q) = %v, want %v",
					tt.exitCode, tt.interrupted, tt.stderr, got, tt.want)
			}
		})
	}
}
