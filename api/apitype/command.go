package apitype

// Command is a payload sent to a topic. String describes it in trace logs.
type Command interface {
	String() string
}
