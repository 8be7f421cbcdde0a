package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"timbrapp.com/timbrapp/security"
)

// Mints a session token for manual API testing:
//
//	TIMBRAPP_SIGNING_SECRET=... go run ./cmd/createtoken -role admin -subject <id>
func main() {
	role := flag.String("role", security.RoleEmployee, "token role (employee or admin)")
	subject := flag.String("subject", "", "employee or admin ID")
	name := flag.String("name", "", "display name embedded in the token")
	lifetime := flag.Duration("lifetime", 8*time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("TIMBRAPP_SIGNING_SECRET")
	if secret == "" {
		log.Fatal("TIMBRAPP_SIGNING_SECRET environment variable is required")
	}
	if *subject == "" {
		log.Fatal("-subject is required")
	}

	token, err := security.CreateSessionToken([]byte(secret), *role, *subject, *name, time.Now(), *lifetime)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
