package compiles

// DemoSource exercises every token kind, every unary operator and each kind of syntax error.
const DemoSource = `
        42;
        -123;
        ~5;
        !0;
        - 99 ;
        ! 1 ;
        ~ -2 ;
        abc;
        100
    `

var DemoUnit = Unit{
	Name:   "demo",
	Source: DemoSource,
}
