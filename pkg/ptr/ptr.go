package ptr

// Ptr retorna um ponteiro para o valor informado
func Ptr[T any](v T) *T {
	return &v
}

// Deref retorna o valor apontado ou o zero value se o ponteiro for nil
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
