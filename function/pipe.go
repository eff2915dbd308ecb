package function

// Pipe1 applies one function to a value.
func Pipe1[A, B any](a A, ab func(A) B) B {
	return ab(a)
}

// Pipe2 applies two functions left-to-right.
func Pipe2[A, B, C any](a A, ab func(A) B, bc func(B) C) C {
	return bc(ab(a))
}

// Pipe3 applies three functions left-to-right.
func Pipe3[A, B, C, D any](a A, ab func(A) B, bc func(B) C, cd func(C) D) D {
	return cd(bc(ab(a)))
}

// Pipe4 applies four functions left-to-right.
func Pipe4[A, B, C, D, E any](a A, ab func(A) B, bc func(B) C, cd func(C) D, de func(D) E) E {
	return de(cd(bc(ab(a))))
}

// Pipe5 applies five functions left-to-right.
func Pipe5[A, B, C, D, E, F any](a A, ab func(A) B, bc func(B) C, cd func(C) D, de func(D) E, ef func(E) F) F {
	return ef(de(cd(bc(ab(a)))))
}

// Pipe6 applies six functions left-to-right.
func Pipe6[A, B, C, D, E, F, G any](a A, ab func(A) B, bc func(B) C, cd func(C) D, de func(D) E, ef func(E) F, fg func(F) G) G {
	return fg(ef(de(cd(bc(ab(a))))))
}

// Pipe7 applies seven functions left-to-right.
func Pipe7[A, B, C, D, E, F, G, H any](a A, ab func(A) B, bc func(B) C, cd func(C) D, de func(D) E, ef func(E) F, fg func(F) G, gh func(G) H) H {
	return gh(fg(ef(de(cd(bc(ab(a)))))))
}

// Pipe8 applies eight functions left-to-right.
func Pipe8[A, B, C, D, E, F, G, H, I any](a A, ab func(A) B, bc func(B) C, cd func(C) D, de func(D) E, ef func(E) F, fg func(F) G, gh func(G) H, hi func(H) I) I {
	return hi(gh(fg(ef(de(cd(bc(ab(a))))))))
}

// Pipe9 applies nine functions left-to-right.
func Pipe9[A, B, C, D, E, F, G, H, I, J any](a A, ab func(A) B, bc func(B) C, cd func(C) D, de func(D) E, ef func(E) F, fg func(F) G, gh func(G) H, hi func(H) I, ij func(I) J) J {
	return ij(hi(gh(fg(ef(de(cd(bc(ab(a)))))))))
}

// Flow1 is the point-free form of Pipe1.
func Flow1[A, B any](ab func(A) B) func(A) B {
	return ab
}

// Flow2 composes two functions left-to-right.
func Flow2[A, B, C any](ab func(A) B, bc func(B) C) func(A) C {
	return func(a A) C {
		return bc(ab(a))
	}
}

// Flow3 composes three functions left-to-right.
func Flow3[A, B, C, D any](ab func(A) B, bc func(B) C, cd func(C) D) func(A) D {
	return func(a A) D {
		return cd(bc(ab(a)))
	}
}

// Flow4 composes four functions left-to-right.
func Flow4[A, B, C, D, E any](ab func(A) B, bc func(B) C, cd func(C) D, de func(D) E) func(A) E {
	return func(a A) E {
		return de(cd(bc(ab(a))))
	}
}

// Flow5 composes five functions left-to-right.
func Flow5[A, B, C, D, E, F any](ab func(A) B, bc func(B) C, cd func(C) D, de func(D) E, ef func(E) F) func(A) F {
	return func(a A) F {
		return ef(de(cd(bc(ab(a)))))
	}
}
