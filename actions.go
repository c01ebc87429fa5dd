package grammarian

// Const returns an Action that ignores its input and always yields v,
// grounded in the source library's actions.constant helper (used to turn
// a matched literal like "true" or "null" into a fixed Go value).
func Const(v interface{}) Action {
	return func(interface{}) interface{} { return v }
}
