package constants

type ContextKey string

const (
	PoolKey      ContextKey = "pool"
	TxKey        ContextKey = "tx"
	AppKey       ContextKey = "app"
	LoggerKey    ContextKey = "logger"
	RequestStart ContextKey = "requestStart"
)
