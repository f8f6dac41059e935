package storage

import "fmt"

// DefaultMaxRetries is the write retry count used when a Config does not
// set its own.
const DefaultMaxRetries = 4

// Config selects and parameterizes a Storage backend. Bucket names the
// store; the reserved name "standalone" selects the local filesystem,
// with Root as its base directory. Anything else is treated as an S3
// bucket and Root is ignored.
type Config struct {
	Bucket     string
	Root       string
	MaxRetries int
}

// NewConfig returns a Config for the named bucket with default retries.
func NewConfig(bucket, root string) Config {
	return Config{
		Bucket:     bucket,
		Root:       root,
		MaxRetries: DefaultMaxRetries,
	}
}

func (c Config) String() string {
	if len(c.Root) > 0 {
		return fmt.Sprintf("{Bucket:%v Root:%v MaxRetries:%v}",
			c.Bucket, c.Root, c.MaxRetries)
	}

	return fmt.Sprintf("{Bucket:%v MaxRetries:%v}", c.Bucket, c.MaxRetries)
}
