// @title           Profil politika API
// @version         1.0
// @description     Verejné API pre profil politika: reformné tabuľky, kontaktný formulár, verejný chat a video galéria.
// @contact.name    Ivan Noskovič
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8000
// @BasePath        /

package main

import "profil_backend/internal/app"

func main() {
	app.Run()
}
