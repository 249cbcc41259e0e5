package annotation

// NextEpoch devolve um epoch livre para o paciente: o relógio atual, ou
// maior+1 quando já existe anotação no mesmo segundo (ou adiante).
func NextEpoch(now, maxExisting int64) int64 {
	if now > maxExisting {
		return now
	}
	return maxExisting + 1
}
