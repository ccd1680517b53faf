// Package phpconfig queries the php-config helper shipped with a PHP
// installation for the directories an extension is installed into.
package phpconfig
