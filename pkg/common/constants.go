package common

const (
	RedisStreamQualityPassExecution = "quality.pass.execution"

	RedisStreamGroup    = "quality-group"
	RedisStreamConsumer = "quality-consumer"
)
