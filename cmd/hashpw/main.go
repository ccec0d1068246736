// hashpw prints the PHC string for LIBRARIAN_PASSWORD_HASH.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/ChanisChanita/DAWA-Semana12-Autores-Libros/internal/security/password"
)

func main() {
	plain := flag.String("password", "", "Plaintext password to hash")
	flag.Parse()

	if *plain == "" {
		log.Fatal("usage: hashpw -password <plaintext>")
	}

	phc, err := password.Hash(*plain)
	if err != nil {
		log.Fatalf("hashing failed: %v", err)
	}
	fmt.Println(phc)
}
