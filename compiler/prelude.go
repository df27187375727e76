package compiler

// prelude is prepended verbatim to every successfully emitted
// program. It defines the `u` alias and the mangled runtime
// built-ins that back the `write` and `read` calls a program may
// make.
const prelude = `#include <stdio.h>
#include <stdint.h>

typedef uint64_t u;

u _ssharp_write(u _input) {
	 printf("%lu\n", _input);
}
u _ssharp_read() {
	u _tmp;
	scanf("%lu", &_tmp);
	return _tmp;
}
`
